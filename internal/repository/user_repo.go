package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/florandefossez/capsules/internal/models"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername returns the user with the exact username, or
// models.ErrNotFound. Usernames are not unique at the schema level; the
// first row wins, matching how logins have always behaved.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `
		SELECT id, username, password, permission
		FROM users
		WHERE username = $1
		LIMIT 1
	`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new admin account and fills in the generated id.
// Used by cmd/adduser only; the web application never registers users.
func (r *UserRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (username, password, permission)
		VALUES ($1, $2, $3)
		RETURNING id`
	return r.db.QueryRow(q, user.Username, user.Password, user.Permission).Scan(&user.ID)
}
