package service

import (
	"github.com/florandefossez/capsules/internal/models"
	"github.com/florandefossez/capsules/internal/repository"
)

// In-memory stores standing in for the postgres repositories.

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
	capsules   []models.Capsule
	nextID     int
	lastFilter *repository.CapsuleFilter
	lastPage   int
}

func (f *fakeCapsuleStore) GetByID(id int) (*models.Capsule, error) {
	for i := range f.capsules {
		if f.capsules[i].ID == id {
			return &f.capsules[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// List applies only the brand filter and pagination; the SQL-level filter
// behavior is the repository's concern, the services only need faithful
// paging and the filter handed through for inspection.
func (f *fakeCapsuleStore) List(filter *repository.CapsuleFilter, page, perPage int) ([]models.CapsuleWithBrand, int, error) {
	f.lastFilter = filter
	f.lastPage = page

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
