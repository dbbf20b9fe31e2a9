package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florandefossez/capsules/internal/models"
)

func newAdminFixture() (*AdminService, *fakeCapsuleStore, *fakeBrandStore) {
	brands := &fakeBrandStore{brands: []models.Brand{
		{ID: 1, Name: "Acme"},
	}, nextID: 1}
	capsules := &fakeCapsuleStore{}
	return NewAdminService(capsules, brands), capsules, brands
}

func validInput() *CapsuleInput {
	return &CapsuleInput{
		Title:           "Cuvée",
		Reference:       "7B",
		BrandName:       "Acme",
		TextTop:         "Grand Cru",
		TextAside:       "Brut",
		BackgroundColor: 1,
		AsideColor:      2,
		TextColor:       3,
		TextAsideColor:  4,
		Diameter:        3,
	}
}

func TestCreateCapsule(t *testing.T) {
	t.Run("splits reference and stores", func(t *testing.T) {
		svc, capsules, _ := newAdminFixture()

		id, err := svc.CreateCapsule(validInput())
		require.NoError(t, err)
		assert.Equal(t, 1, id)

		stored, err := capsules.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, 7, stored.Reference)
		assert.Equal(t, "B", stored.SubReference)
		assert.Equal(t, 1, stored.Brand)
		assert.NotEmpty(t, stored.DateCreated)
	})

	t.Run("unknown brand writes nothing", func(t *testing.T) {
		svc, capsules, _ := newAdminFixture()

		in := validInput()
		in.BrandName = "Nope"
		_, err := svc.CreateCapsule(in)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Empty(t, capsules.capsules)
	})

	t.Run("out of range color writes nothing", func(t *testing.T) {
		svc, capsules, _ := newAdminFixture()

		in := validInput()
		in.TextColor = len(models.Colors)
		_, err := svc.CreateCapsule(in)
		assert.ErrorIs(t, err, models.ErrInvalidColor)
		assert.Empty(t, capsules.capsules)
	})

	t.Run("out of range diameter writes nothing", func(t *testing.T) {
		svc, capsules, _ := newAdminFixture()

		in := validInput()
		in.Diameter = -1
		_, err := svc.CreateCapsule(in)
		assert.ErrorIs(t, err, models.ErrInvalidDiameter)
		assert.Empty(t, capsules.capsules)
	})
}

func TestUpdateCapsule(t *testing.T) {
	svc, capsules, _ := newAdminFixture()
	capsules.capsules = []models.Capsule{
		{ID: 5, Title: "old", Brand: 1, DateCreated: "01-01-20"},
	}
	capsules.nextID = 5

	t.Run("rewrites fields, keeps creation date", func(t *testing.T) {
		require.NoError(t, svc.UpdateCapsule(5, validInput()))

		stored, err := capsules.GetByID(5)
		require.NoError(t, err)
		assert.Equal(t, "Cuvée", stored.Title)
		assert.Equal(t, 7, stored.Reference)
		assert.Equal(t, "B", stored.SubReference)
		assert.Equal(t, "01-01-20", stored.DateCreated)
	})

	t.Run("missing capsule", func(t *testing.T) {
		assert.ErrorIs(t, svc.UpdateCapsule(99, validInput()), models.ErrNotFound)
	})
}

func TestDeleteCapsule(t *testing.T) {
	svc, capsules, _ := newAdminFixture()
	capsules.capsules = []models.Capsule{{ID: 5, Brand: 1}}

	assert.ErrorIs(t, svc.DeleteCapsule(99), models.ErrNotFound)
	require.NoError(t, svc.DeleteCapsule(5))
	assert.Empty(t, capsules.capsules)
}

func TestCreateBrand(t *testing.T) {
	svc, _, brands := newAdminFixture()

	id, err := svc.CreateBrand("  Pommery  ", "maison de champagne")
	require.NoError(t, err)

	stored, err := brands.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Pommery", stored.Name)
	assert.Equal(t, "maison de champagne", stored.Description)
}
