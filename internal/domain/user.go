package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field limits, mirrored by the column sizes in the accounts and users tables.
const (
	MaxNameLength          = 100
	MaxAccountNumberLength = 32
	MaxAgencyLength        = 16

	// AmountScale is the number of decimal places stored for balance and limit.
	AmountScale = 2
)

// MaxAmount is the exclusive bound on the absolute value of balance and
// limit, matching the NUMERIC(13,2) columns.
var MaxAmount = decimal.New(1, 13-AmountScale)

// User validation errors. Each wraps ErrValidation.
var (
	ErrEmptyAccountNumber   = fmt.Errorf("%w: account number cannot be empty", ErrValidation)
	ErrAccountNumberTooLong = fmt.Errorf("%w: account number must be at most %d characters", ErrValidation, MaxAccountNumberLength)
	ErrAgencyTooLong        = fmt.Errorf("%w: agency must be at most %d characters", ErrValidation, MaxAgencyLength)
	ErrNameTooLong          = fmt.Errorf("%w: name must be at most %d characters", ErrValidation, MaxNameLength)
	ErrMissingAccount       = fmt.Errorf("%w: account is required", ErrValidation)
	ErrNegativeLimit        = fmt.Errorf("%w: account limit cannot be negative", ErrValidation)
	ErrAmountOutOfRange     = fmt.Errorf(
		"%w: amounts must be below %s in absolute value with at most %d decimal places",
		ErrValidation, MaxAmount.String(), AmountScale,
	)
)

// Account is the bank account owned by a single User.
type Account struct {
	ID      int64           `json:"id,omitempty"`
	Number  string          `json:"number"`
	Agency  string          `json:"agency,omitempty"`
	Balance decimal.Decimal `json:"balance"`
	Limit   decimal.Decimal `json:"limit"`
}

// User is a bank customer. The ID is assigned by the store on creation.
type User struct {
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name,omitempty"`
	Account   *Account  `json:"account"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// NewUser builds a user owning a fresh account with the given number.
// Balance and limit start at zero.
func NewUser(name, accountNumber, agency string) (*User, error) {
	user := &User{
		Name: strings.TrimSpace(name),
		Account: &Account{
			Number:  strings.TrimSpace(accountNumber),
			Agency:  strings.TrimSpace(agency),
			Balance: decimal.Zero,
			Limit:   decimal.Zero,
		},
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// AccountNumber returns the number of the user's account, or "" when the
// user has no account attached.
func (u *User) AccountNumber() string {
	if u == nil || u.Account == nil {
		return ""
	}
	return u.Account.Number
}

// Normalize trims surrounding whitespace from the user-supplied text fields.
func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	if u.Account != nil {
		u.Account.Number = strings.TrimSpace(u.Account.Number)
		u.Account.Agency = strings.TrimSpace(u.Account.Agency)
	}
}

// Validate checks if the User has valid data.
// It does not check account number uniqueness.
func (u *User) Validate() error {
	if utf8.RuneCountInString(u.Name) > MaxNameLength {
		return ErrNameTooLong
	}

	if u.Account == nil {
		return ErrMissingAccount
	}

	return u.Account.Validate()
}

// Validate checks the account's own fields.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Number) == "" {
		return ErrEmptyAccountNumber
	}
	if utf8.RuneCountInString(a.Number) > MaxAccountNumberLength {
		return ErrAccountNumberTooLong
	}
	if utf8.RuneCountInString(a.Agency) > MaxAgencyLength {
		return ErrAgencyTooLong
	}
	if !validAmount(a.Balance) || !validAmount(a.Limit) {
		return ErrAmountOutOfRange
	}
	if a.Limit.IsNegative() {
		return ErrNegativeLimit
	}
	return nil
}

func validAmount(d decimal.Decimal) bool {
	return d.Abs().LessThan(MaxAmount) && d.Equal(d.Round(AmountScale))
}
