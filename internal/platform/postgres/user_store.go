package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xanderson/homebank-api/internal/domain"
	"github.com/xanderson/homebank-api/internal/platform/logger"
	"github.com/xanderson/homebank-api/internal/redact"
	"github.com/xanderson/homebank-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// The account and the user are inserted by a single statement so a user can
// never exist without its account, even outside an explicit transaction.
const createUserQuery = `
	WITH new_account AS (
		INSERT INTO accounts (number, agency, balance, account_limit)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	)
	INSERT INTO users (name, account_id)
	SELECT $5, id FROM new_account
	RETURNING id, account_id, created_at, updated_at
`

const getUserByIDQuery = `
	SELECT u.id, u.name, u.created_at, u.updated_at,
	       a.id, a.number, a.agency, a.balance, a.account_limit
	FROM users u
	JOIN accounts a ON a.id = u.account_id
	WHERE u.id = $1
`

const existsByAccountNumberQuery = `
	SELECT EXISTS (
		SELECT 1
		FROM users u
		JOIN accounts a ON a.id = u.account_id
		WHERE a.number = $1
	)
`

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(
		ctx,
		createUserQuery,
		user.Account.Number,
		user.Account.Agency,
		user.Account.Balance,
		user.Account.Limit,
		user.Name,
	).Scan(
		&user.ID,
		&user.Account.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrAccountNumberExists) {
			log.Debug("account number already exists",
				slog.String("account_number", redact.AccountNumber(user.Account.Number)))
			return mapped
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("account_number", redact.AccountNumber(user.Account.Number)))
		return store.NewStoreError("user", "create", "insert failed", mapped)
	}

	log.Info("user created successfully",
		slog.Int64("user_id", user.ID),
		slog.Int64("account_id", user.Account.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by ID", slog.Int64("user_id", id))

	user := domain.User{Account: &domain.Account{}}
	err := s.db.QueryRowContext(ctx, getUserByIDQuery, id).Scan(
		&user.ID,
		&user.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Account.ID,
		&user.Account.Number,
		&user.Account.Agency,
		&user.Account.Balance,
		&user.Account.Limit,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}

		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, store.NewStoreError("user", "get", "query failed", MapError(err))
	}

	return &user, nil
}

// ExistsByAccountNumber implements store.UserStore.ExistsByAccountNumber
func (s *PostgresUserStore) ExistsByAccountNumber(ctx context.Context, number string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	if err := s.db.QueryRowContext(ctx, existsByAccountNumberQuery, number).Scan(&exists); err != nil {
		log.Error("failed to check account number",
			slog.String("error", err.Error()))
		return false, fmt.Errorf("failed to check account number: %w", MapError(err))
	}

	return exists, nil
}

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}
