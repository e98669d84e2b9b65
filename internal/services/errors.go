package services

import "errors"

// Client-visible failure taxonomy. Handlers map these onto HTTP statuses;
// anything else is logged and surfaced as a generic 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrValidation         = errors.New("missing or invalid fields")
	ErrConflict           = errors.New("identifier already exists")
	ErrNotFound           = errors.New("resource not found")
)
