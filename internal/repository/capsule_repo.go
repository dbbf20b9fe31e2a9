package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/florandefossez/capsules/internal/models"
)

// CapsuleFilter holds the optional listing filters. Pointer fields apply
// only when non-nil so that a filter value of 0 stays distinguishable from
// "no filter"; string fields apply when non-empty (substring, case
// insensitive). All active filters combine with AND.
type CapsuleFilter struct {
	BrandID         *int
	Reference       *int
	SubReference    *string
	TextTop         string
	TextAside       string
	BackgroundColor *int
	AsideColor      *int
	TextColor       *int
	TextAsideColor  *int
	Diameter        *int
}

type CapsuleRepository struct {
	db *sqlx.DB
}

func NewCapsuleRepository(db *sqlx.DB) *CapsuleRepository {
	return &CapsuleRepository{db: db}
}

// GetByID returns a single capsule by id.
func (r *CapsuleRepository) GetByID(id int) (*models.Capsule, error) {
	var c models.Capsule
	err := r.db.Get(&c, `SELECT * FROM capsules WHERE id = $1 LIMIT 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns one page of capsules joined with their brand name, plus the
// total number of matching rows. Results are ordered by brand name, then
// reference, then sub-reference. Page begins at 1; pages past the end
// return an empty slice.
func (r *CapsuleRepository) List(filter *CapsuleFilter, page, perPage int) ([]models.CapsuleWithBrand, int, error) {
	baseQ := `FROM capsules c
              JOIN brands b ON b.id = c.brand
              WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	addInt := func(column string, v *int) {
		if v != nil {
			baseQ += fmt.Sprintf(" AND %s = $%d", column, argIdx)
			args = append(args, *v)
			argIdx++
		}
	}

	addInt("c.brand", filter.BrandID)
	if filter.Reference != nil && filter.SubReference != nil {
		baseQ += fmt.Sprintf(" AND c.reference = $%d AND c.sub_reference = $%d", argIdx, argIdx+1)
		args = append(args, *filter.Reference, *filter.SubReference)
		argIdx += 2
	}
	if filter.TextTop != "" {
		baseQ += fmt.Sprintf(" AND c.text_top ILIKE $%d", argIdx)
		args = append(args, "%"+filter.TextTop+"%")
		argIdx++
	}
	if filter.TextAside != "" {
		baseQ += fmt.Sprintf(" AND c.text_aside ILIKE $%d", argIdx)
		args = append(args, "%"+filter.TextAside+"%")
		argIdx++
	}
	addInt("c.background_color", filter.BackgroundColor)
	addInt("c.aside_color", filter.AsideColor)
	addInt("c.text_color", filter.TextColor)
	addInt("c.text_aside_color", filter.TextAsideColor)
	addInt("c.diameter", filter.Diameter)

	countQ := "SELECT COUNT(*) " + baseQ
	var total int
	if err := r.db.Get(&total, countQ, args...); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	selectQ := fmt.Sprintf(`
		SELECT c.*, b.name AS brand_name
		%s
		ORDER BY b.name, c.reference, c.sub_reference
		LIMIT $%d OFFSET $%d`, baseQ, argIdx, argIdx+1)
	args = append(args, perPage, offset)

	var capsules []models.CapsuleWithBrand
	if err := r.db.Select(&capsules, selectQ, args...); err != nil {
		return nil, 0, err
	}
	return capsules, total, nil
}

// Create inserts a new capsule and fills in the generated id.
func (r *CapsuleRepository) Create(c *models.Capsule) error {
	const q = `
		INSERT INTO capsules (
			title, reference, sub_reference, brand, date_created,
			text_top, text_aside,
			background_color, aside_color, text_color, text_aside_color, diameter
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	return r.db.QueryRow(q,
		c.Title, c.Reference, c.SubReference, c.Brand, c.DateCreated,
		c.TextTop, c.TextAside,
		c.BackgroundColor, c.AsideColor, c.TextColor, c.TextAsideColor, c.Diameter,
	).Scan(&c.ID)
}

// Update rewrites all editable fields of an existing capsule.
func (r *CapsuleRepository) Update(c *models.Capsule) error {
	const q = `
		UPDATE capsules SET
			title = $1, reference = $2, sub_reference = $3, brand = $4,
			text_top = $5, text_aside = $6,
			background_color = $7, aside_color = $8, text_color = $9,
			text_aside_color = $10, diameter = $11
		WHERE id = $12`
	res, err := r.db.Exec(q,
		c.Title, c.Reference, c.SubReference, c.Brand,
		c.TextTop, c.TextAside,
		c.BackgroundColor, c.AsideColor, c.TextColor, c.TextAsideColor, c.Diameter,
		c.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a capsule by id, returning models.ErrNotFound when no row
// matched.
func (r *CapsuleRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM capsules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
