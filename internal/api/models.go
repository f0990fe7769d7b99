package api

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xanderson/homebank-api/internal/domain"
)

// AccountRequest is the account part of a CreateUserRequest.
type AccountRequest struct {
	Number  string          `json:"number"  validate:"required,max=32"`
	Agency  string          `json:"agency"  validate:"max=16"`
	Balance decimal.Decimal `json:"balance"`
	Limit   decimal.Decimal `json:"limit"`
}

// CreateUserRequest defines the payload for POST /users.
type CreateUserRequest struct {
	Name    string          `json:"name"    validate:"max=100"`
	Account *AccountRequest `json:"account" validate:"required"`
}

// Normalize trims surrounding whitespace from the text fields so the length
// limits apply to the values that are stored.
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Account != nil {
		r.Account.Number = strings.TrimSpace(r.Account.Number)
		r.Account.Agency = strings.TrimSpace(r.Account.Agency)
	}
}

// ToDomain converts the request into a candidate user.
func (r *CreateUserRequest) ToDomain() *domain.User {
	user := &domain.User{Name: r.Name}
	if r.Account != nil {
		user.Account = &domain.Account{
			Number:  r.Account.Number,
			Agency:  r.Account.Agency,
			Balance: r.Account.Balance,
			Limit:   r.Account.Limit,
		}
	}
	return user
}

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status string `json:"status"`
}
