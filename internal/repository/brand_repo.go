package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/florandefossez/capsules/internal/models"
)

type BrandRepository struct {
	db *sqlx.DB
}

func NewBrandRepository(db *sqlx.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// GetByID returns a single brand by id.
func (r *BrandRepository) GetByID(id int) (*models.Brand, error) {
	var b models.Brand
	err := r.db.Get(&b, `SELECT id, name, description FROM brands WHERE id = $1 LIMIT 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByName returns the brand with the exact, case-sensitive name.
func (r *BrandRepository) GetByName(name string) (*models.Brand, error) {
	var b models.Brand
	err := r.db.Get(&b, `SELECT id, name, description FROM brands WHERE name = $1 LIMIT 1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListOrdered returns all brands ordered by name ascending.
func (r *BrandRepository) ListOrdered() ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Select(&brands, `SELECT id, name, description FROM brands ORDER BY name`); err != nil {
		return nil, err
	}
	return brands, nil
}

// Create inserts a new brand and fills in the generated id.
func (r *BrandRepository) Create(b *models.Brand) error {
	const q = `
		INSERT INTO brands (name, description)
		VALUES ($1, $2)
		RETURNING id`
	return r.db.QueryRow(q, b.Name, b.Description).Scan(&b.ID)
}
