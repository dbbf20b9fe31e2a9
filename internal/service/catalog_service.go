package service

import (
	"errors"

	"github.com/florandefossez/capsules/internal/models"
	"github.com/florandefossez/capsules/internal/repository"
)

// PageSize is the fixed number of capsules per listing page.
const PageSize = 48

// BrandStore is the brand access surface the services need.
type BrandStore interface {
	GetByID(id int) (*models.Brand, error)
	GetByName(name string) (*models.Brand, error)
	ListOrdered() ([]models.Brand, error)
	Create(b *models.Brand) error
}

// CapsuleStore is the capsule access surface the services need.
type CapsuleStore interface {
	GetByID(id int) (*models.Capsule, error)
	List(filter *repository.CapsuleFilter, page, perPage int) ([]models.CapsuleWithBrand, int, error)
	Create(c *models.Capsule) error
	Update(c *models.Capsule) error
	Delete(id int) error
}

// ListParams carries the raw, optional listing filters as they arrive from
// the query string. Pointer fields are nil when the parameter was absent.
type ListParams struct {
	Page            int
	BrandName       string
	Reference       string
	TextTop         string
	TextAside       string
	BackgroundColor *int
	AsideColor      *int
	TextColor       *int
	TextAsideColor  *int
	Diameter        *int
}

// CapsulePage is one page of listing results.
type CapsulePage struct {
	Items   []models.CapsuleWithBrand
	Page    int
	Total   int
	HasPrev bool
	HasNext bool
	// Brand is the resolved brand filter, when one matched. Templates use
	// it for the page heading.
	Brand *models.Brand
}

// CapsuleDetail is a capsule joined with its brand for the detail view.
type CapsuleDetail struct {
	Capsule *models.Capsule
	Brand   *models.Brand
	// Reference is the combined display form, e.g. "12A".
	Reference string
}

// BrandGroup is one letter of the alphabetical brand index.
type BrandGroup struct {
	Letter string
	Brands []models.Brand
}

type CatalogService struct {
	capsules CapsuleStore
	brands   BrandStore
}

func NewCatalogService(capsules CapsuleStore, brands BrandStore) *CatalogService {
	return &CatalogService{capsules: capsules, brands: brands}
}

// ListCapsules resolves the raw filter parameters and returns one page of
// matching capsules. A brand_name with no matching brand is dropped
// silently, all other filters still apply.
func (s *CatalogService) ListCapsules(p *ListParams) (*CapsulePage, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}

	filter := &repository.CapsuleFilter{
		TextTop:         p.TextTop,
		TextAside:       p.TextAside,
		BackgroundColor: p.BackgroundColor,
		AsideColor:      p.AsideColor,
		TextColor:       p.TextColor,
		TextAsideColor:  p.TextAsideColor,
		Diameter:        p.Diameter,
	}

	var pageBrand *models.Brand
	if p.BrandName != "" {
		brand, err := s.brands.GetByName(p.BrandName)
		switch {
		case err == nil:
			filter.BrandID = &brand.ID
			pageBrand = brand
		case errors.Is(err, models.ErrNotFound):
			// Unknown brand name: ignore the filter.
		default:
			return nil, err
		}
	}

	if p.Reference != "" {
		ref, sub := models.SplitReference(p.Reference)
		filter.Reference = &ref
		filter.SubReference = &sub
	}

	items, total, err := s.capsules.List(filter, page, PageSize)
	if err != nil {
		return nil, err
	}

	return &CapsulePage{
		Items:   items,
		Page:    page,
		Total:   total,
		HasPrev: page > 1,
		HasNext: page*PageSize < total,
		Brand:   pageBrand,
	}, nil
}

// GetCapsule returns the detail view data for one capsule. Either the
// capsule or its brand missing yields models.ErrNotFound.
func (s *CatalogService) GetCapsule(id int) (*CapsuleDetail, error) {
	capsule, err := s.capsules.GetByID(id)
	if err != nil {
		return nil, err
	}
	brand, err := s.brands.GetByID(capsule.Brand)
	if err != nil {
		return nil, err
	}
	return &CapsuleDetail{
		Capsule:   capsule,
		Brand:     brand,
		Reference: models.JoinReference(capsule.Reference, capsule.SubReference),
	}, nil
}

// BrandsGrouped returns all brands ordered by name and grouped by the first
// character of the name, for the alphabetical index view.
func (s *CatalogService) BrandsGrouped() ([]BrandGroup, error) {
	brands, err := s.brands.ListOrdered()
	if err != nil {
		return nil, err
	}

	var groups []BrandGroup
	for _, b := range brands {
		if b.Name == "" {
			continue
		}
		letter := string([]rune(b.Name)[0])
		if len(groups) == 0 || groups[len(groups)-1].Letter != letter {
			groups = append(groups, BrandGroup{Letter: letter})
		}
		groups[len(groups)-1].Brands = append(groups[len(groups)-1].Brands, b)
	}
	return groups, nil
}
