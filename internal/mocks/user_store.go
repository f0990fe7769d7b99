package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/xanderson/homebank-api/internal/domain"
	"github.com/xanderson/homebank-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// Without function overrides it behaves like an in-memory store: identifiers
// are assigned sequentially starting at 1 and account numbers are unique.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn                func(ctx context.Context, user *domain.User) error
	GetByIDFn               func(ctx context.Context, id int64) (*domain.User, error)
	ExistsByAccountNumberFn func(ctx context.Context, number string) (bool, error)

	// Data for default implementation
	Users       map[int64]*domain.User
	LastUserID  int64
	CreateError error
	CreateCalls int

	mu sync.Mutex
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[int64]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}

	for _, u := range m.Users {
		if u.AccountNumber() == user.AccountNumber() {
			return store.ErrAccountNumberExists
		}
	}

	m.LastUserID++
	user.ID = m.LastUserID
	if user.Account != nil {
		user.Account.ID = m.LastUserID
	}
	m.Users[user.ID] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// ExistsByAccountNumber implements the UserStore interface
func (m *MockUserStore) ExistsByAccountNumber(ctx context.Context, number string) (bool, error) {
	if m.ExistsByAccountNumberFn != nil {
		return m.ExistsByAccountNumberFn(ctx, number)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.Users {
		if u.AccountNumber() == number {
			return true, nil
		}
	}
	return false, nil
}

// WithTx returns the same mock; transactions are not simulated.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MockTxRunner implements store.TxRunner by calling fn with a nil transaction.
type MockTxRunner struct {
	// Err, when set, is returned instead of running fn.
	Err   error
	Calls int
}

// RunInTransaction implements the TxRunner interface
func (r *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	r.Calls++
	if r.Err != nil {
		return r.Err
	}
	return fn(ctx, nil)
}
