package service

import (
	"errors"
	"fmt"

	"github.com/xanderson/homebank-api/internal/store"
)

// Service errors returned to the API layer.
// Callers use errors.Is to check for these conditions; the API layer maps
// them to HTTP status codes.
var (
	// ErrUserNotFound indicates no user has the requested identifier.
	// It wraps store.ErrUserNotFound. API layer should map this to HTTP 404 Not Found.
	ErrUserNotFound = fmt.Errorf("user not found: %w", store.ErrUserNotFound)

	// ErrDuplicateAccount indicates the candidate's account number is already
	// owned by a stored user. It wraps store.ErrAccountNumberExists.
	// API layer should map this to HTTP 409 Conflict.
	ErrDuplicateAccount = fmt.Errorf("this user account number already exists: %w", store.ErrAccountNumberExists)

	// ErrNilUser is returned when Create is called without a candidate.
	ErrNilUser = errors.New("user cannot be nil")
)
