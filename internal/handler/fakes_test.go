package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/florandefossez/capsules/internal/models"
	"github.com/florandefossez/capsules/internal/repository"
	"github.com/florandefossez/capsules/internal/session"
)

// In-memory stores backing the services under test.

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) GetByUsername(username string) (*models.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, models.ErrNotFound
}

type fakeBrandStore struct {
	brands []models.Brand
	nextID int
}

func (f *fakeBrandStore) GetByID(id int) (*models.Brand, error) {
	for i := range f.brands {
		if f.brands[i].ID == id {
			return &f.brands[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeBrandStore) GetByName(name string) (*models.Brand, error) {
	for i := range f.brands {
		if f.brands[i].Name == name {
			return &f.brands[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeBrandStore) ListOrdered() ([]models.Brand, error) {
	return f.brands, nil
}

func (f *fakeBrandStore) Create(b *models.Brand) error {
	f.nextID++
	b.ID = f.nextID
	f.brands = append(f.brands, *b)
	return nil
}

type fakeCapsuleStore struct {
	capsules []models.Capsule
	nextID   int
}

func (f *fakeCapsuleStore) GetByID(id int) (*models.Capsule, error) {
	for i := range f.capsules {
		if f.capsules[i].ID == id {
			return &f.capsules[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeCapsuleStore) List(filter *repository.CapsuleFilter, page, perPage int) ([]models.CapsuleWithBrand, int, error) {
	var matched []models.CapsuleWithBrand
	for _, c := range f.capsules {
		if filter.BrandID != nil && c.Brand != *filter.BrandID {
			continue
		}
		matched = append(matched, models.CapsuleWithBrand{Capsule: c})
	}

	total := len(matched)
	start := (page - 1) * perPage
	if start >= total {
		return nil, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *fakeCapsuleStore) Create(c *models.Capsule) error {
	f.nextID++
	c.ID = f.nextID
	f.capsules = append(f.capsules, *c)
	return nil
}

func (f *fakeCapsuleStore) Update(c *models.Capsule) error {
	for i := range f.capsules {
		if f.capsules[i].ID == c.ID {
			f.capsules[i] = *c
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeCapsuleStore) Delete(id int) error {
	for i := range f.capsules {
		if f.capsules[i].ID == id {
			f.capsules = append(f.capsules[:i], f.capsules[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// newTestRouter returns a gin engine with the application's templates
// loaded, ready for handlers under test.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../view/templates/*.html")
	return router
}

// asSession stubs the login guard, injecting a fixed session the way
// middleware.RequireLogin would.
func asSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", sess)
		c.Next()
	}
}
