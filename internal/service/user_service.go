package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xanderson/homebank-api/internal/domain"
	"github.com/xanderson/homebank-api/internal/platform/metrics"
	"github.com/xanderson/homebank-api/internal/redact"
	"github.com/xanderson/homebank-api/internal/store"
)

// UserService provides the user operations exposed by the API.
type UserService interface {
	// FindByID retrieves a user by its identifier.
	// Returns ErrUserNotFound if no user has that identifier.
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// Create validates and persists a candidate user with its account.
	// Returns ErrDuplicateAccount, without writing anything, if the
	// account number is already owned by a stored user.
	Create(ctx context.Context, candidate *domain.User) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	txRunner  store.TxRunner
	recorder  metrics.UserRecorder
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
// A nil recorder disables user metrics; a nil logger falls back to slog.Default().
func NewUserService(
	userStore store.UserStore,
	txRunner store.TxRunner,
	recorder metrics.UserRecorder,
	logger *slog.Logger,
) UserService {
	if userStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("userStore cannot be nil")
	}
	if txRunner == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("txRunner cannot be nil")
	}
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		txRunner:  txRunner,
		recorder:  recorder,
		logger:    logger.With("component", "user_service"),
	}
}

// FindByID retrieves a user by its identifier.
func (s *UserServiceImpl) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// Create persists the candidate inside a single transaction. The existence
// check and the insert share the transaction; the unique constraint on the
// account number catches a concurrent insert that slips past the check.
func (s *UserServiceImpl) Create(ctx context.Context, candidate *domain.User) (*domain.User, error) {
	if candidate == nil {
		return nil, ErrNilUser
	}

	candidate.Normalize()
	if err := candidate.Validate(); err != nil {
		s.logger.Debug("rejected invalid user", "error", err)
		return nil, err
	}

	number := candidate.AccountNumber()

	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		exists, err := txStore.ExistsByAccountNumber(ctx, number)
		if err != nil {
			return fmt.Errorf("failed to check account number: %w", err)
		}
		if exists {
			return ErrDuplicateAccount
		}

		return txStore.Create(ctx, candidate)
	})
	if err != nil {
		if errors.Is(err, store.ErrAccountNumberExists) {
			s.recorder.DuplicateAccountRejected()
			s.logger.Debug("account number already exists", "account_number", redact.AccountNumber(number))
			return nil, ErrDuplicateAccount
		}
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, store.ErrInvalidEntity) {
			s.logger.Debug("store rejected user", "error", err)
			return nil, err
		}
		s.logger.Error("failed to create user",
			"error", err,
			"account_number", redact.AccountNumber(number))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.recorder.UserCreated()
	s.logger.Info("user created",
		"user_id", candidate.ID,
		"account_id", candidate.Account.ID)
	return candidate, nil
}
