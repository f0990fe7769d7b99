// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Field-specific errors below wrap it, so errors.Is(err, ErrValidation)
	// matches any of them.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed or out of range.
	ErrInvalidID = errors.New("invalid ID")
)
