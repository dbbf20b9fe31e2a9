package models

import "errors"

// Common application errors shared across repositories, services and handlers.
var (
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrInvalidColor       = errors.New("INVALID_COLOR")
	ErrInvalidDiameter    = errors.New("INVALID_DIAMETER")
)
