package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables. It is the single source of truth for runtime parameters.
type Config struct {
	Port          string
	Env           string
	SessionSecret string

	// ImagesDir is the root of the sharded capsule photo tree.
	ImagesDir string
	// DefaultImage is the placeholder served when a photo is missing.
	DefaultImage string

	DB DatabaseConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Load reads configuration from environment variables. If a .env file
// exists in the working directory, it will be loaded first. It returns a
// populated Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that
	// production environments relying solely on real environment variables
	// keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.SessionSecret = getEnv("SESSION_SECRET", "")

	cfg.ImagesDir = getEnv("CAP_IMAGES", "")
	cfg.DefaultImage = getEnv("DEFAULT_IMAGE", "static/images/default.jpg")

	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET must be set for login sessions")
	}
	if cfg.ImagesDir == "" {
		return nil, errors.New("CAP_IMAGES must point to the capsule image directory")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
