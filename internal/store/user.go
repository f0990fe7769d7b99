package store

import (
	"context"
	"database/sql"

	"github.com/xanderson/homebank-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user together with its account.
	// On success user.ID, user.Account.ID and the timestamps are populated.
	// Returns ErrAccountNumberExists if the account number is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user and its account by the user's ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// ExistsByAccountNumber reports whether any stored user owns an account
	// with the given number.
	ExistsByAccountNumber(ctx context.Context, number string) (bool, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
