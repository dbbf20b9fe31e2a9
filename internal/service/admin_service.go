package service

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/florandefossez/capsules/internal/models"
)

// CapsuleInput carries the submitted form fields for a capsule create or
// update. Reference is the combined form ("12A"); BrandName must match an
// existing brand exactly.
type CapsuleInput struct {
	Title           string
	Reference       string
	BrandName       string
	TextTop         string
	TextAside       string
	BackgroundColor int
	AsideColor      int
	TextColor       int
	TextAsideColor  int
	Diameter        int
}

type AdminService struct {
	capsules CapsuleStore
	brands   BrandStore
}

func NewAdminService(capsules CapsuleStore, brands BrandStore) *AdminService {
	return &AdminService{capsules: capsules, brands: brands}
}

// validate rejects color and diameter indices outside the static lists
// before anything is written. Out-of-range values would otherwise only
// break at render time.
func (in *CapsuleInput) validate() error {
	for _, c := range []int{in.BackgroundColor, in.AsideColor, in.TextColor, in.TextAsideColor} {
		if !models.ValidColor(c) {
			return models.ErrInvalidColor
		}
	}
	if !models.ValidDiameter(in.Diameter) {
		return models.ErrInvalidDiameter
	}
	return nil
}

// CreateCapsule stores a new capsule and returns its id. The brand is
// resolved by exact name; models.ErrNotFound means the admin must create
// the brand first and nothing was written.
func (s *AdminService) CreateCapsule(in *CapsuleInput) (int, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	brand, err := s.brands.GetByName(in.BrandName)
	if err != nil {
		return 0, err
	}

	ref, sub := models.SplitReference(in.Reference)
	capsule := &models.Capsule{
		Title:           in.Title,
		Reference:       ref,
		SubReference:    sub,
		Brand:           brand.ID,
		DateCreated:     time.Now().Format("02-01-06"),
		TextTop:         in.TextTop,
		TextAside:       in.TextAside,
		BackgroundColor: in.BackgroundColor,
		AsideColor:      in.AsideColor,
		TextColor:       in.TextColor,
		TextAsideColor:  in.TextAsideColor,
		Diameter:        in.Diameter,
	}
	if err := s.capsules.Create(capsule); err != nil {
		return 0, err
	}
	log.Info().Int("capsule_id", capsule.ID).Str("brand", brand.Name).Msg("capsule created")
	return capsule.ID, nil
}

// UpdateCapsule rewrites an existing capsule from the submitted fields.
// The creation date is kept as-is.
func (s *AdminService) UpdateCapsule(id int, in *CapsuleInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	brand, err := s.brands.GetByName(in.BrandName)
	if err != nil {
		return err
	}
	capsule, err := s.capsules.GetByID(id)
	if err != nil {
		return err
	}

	ref, sub := models.SplitReference(in.Reference)
	capsule.Title = in.Title
	capsule.Reference = ref
	capsule.SubReference = sub
	capsule.Brand = brand.ID
	capsule.TextTop = in.TextTop
	capsule.TextAside = in.TextAside
	capsule.BackgroundColor = in.BackgroundColor
	capsule.AsideColor = in.AsideColor
	capsule.TextColor = in.TextColor
	capsule.TextAsideColor = in.TextAsideColor
	capsule.Diameter = in.Diameter

	if err := s.capsules.Update(capsule); err != nil {
		return err
	}
	log.Info().Int("capsule_id", id).Msg("capsule updated")
	return nil
}

// DeleteCapsule removes a capsule, returning models.ErrNotFound when the
// id does not exist.
func (s *AdminService) DeleteCapsule(id int) error {
	if err := s.capsules.Delete(id); err != nil {
		return err
	}
	log.Info().Int("capsule_id", id).Msg("capsule deleted")
	return nil
}

// CreateBrand stores a new brand, trimming surrounding whitespace from the
// name, and returns its id.
func (s *AdminService) CreateBrand(name, description string) (int, error) {
	brand := &models.Brand{
		Name:        strings.TrimSpace(name),
		Description: description,
	}
	if err := s.brands.Create(brand); err != nil {
		return 0, err
	}
	log.Info().Int("brand_id", brand.ID).Str("name", brand.Name).Msg("brand created")
	return brand.ID, nil
}
