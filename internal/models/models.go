package models

// Permission levels for admin accounts. Level 0 can log in and view the
// edit forms; level 1 is required for any mutation.
const (
	PermissionRead      = 0
	PermissionReadWrite = 1
)

// User is an administrator account. Accounts are created out-of-band
// (see cmd/adduser); the application only ever reads them.
type User struct {
	ID         int    `db:"id"`
	Username   string `db:"username"`
	Password   string `db:"password"` // bcrypt hash
	Permission int    `db:"permission"`
}

// Brand is a capsule manufacturer/label.
type Brand struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

// Capsule is a single catalog item. Color and diameter fields are indices
// into the static Colors and Diameters lists. Brand is a soft reference to
// Brand.ID; no foreign-key constraint exists in the schema.
type Capsule struct {
	ID              int    `db:"id"`
	Title           string `db:"title"`
	Reference       int    `db:"reference"`
	SubReference    string `db:"sub_reference"`
	Brand           int    `db:"brand"`
	DateCreated     string `db:"date_created"`
	TextTop         string `db:"text_top"`
	TextAside       string `db:"text_aside"`
	BackgroundColor int    `db:"background_color"`
	AsideColor      int    `db:"aside_color"`
	TextColor       int    `db:"text_color"`
	TextAsideColor  int    `db:"text_aside_color"`
	Diameter        int    `db:"diameter"`
}

// CapsuleWithBrand is a Capsule joined with its brand's name, as returned
// by catalog listings.
type CapsuleWithBrand struct {
	Capsule
	BrandName string `db:"brand_name"`
}
