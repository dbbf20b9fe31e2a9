package service

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/florandefossez/capsules/internal/models"
)

// UserStore is the user lookup surface AuthService needs.
type UserStore interface {
	GetByUsername(username string) (*models.User, error)
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login verifies a username/password pair and returns the matching user.
// Unknown username and wrong password both map to
// models.ErrInvalidCredentials so the caller cannot tell which factor
// failed.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		log.Debug().Str("username", username).Msg("login attempt for unknown user")
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Debug().Str("username", username).Msg("login attempt with wrong password")
		return nil, models.ErrInvalidCredentials
	}

	log.Info().Str("username", username).Int("user_id", user.ID).Msg("login successful")
	return user, nil
}

// HashPassword produces the bcrypt hash stored in the password column.
// Used by cmd/adduser.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
