package account

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Allowed account types for validation
var accountTypes = map[string]struct{}{
	"Checking":   {},
	"Savings":    {},
	"Credit":     {},
	"Investment": {},
}

// Domain errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoAccounts         = errors.New("no accounts found")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrNegativeBalance    = errors.New("balance cannot be negative")
	ErrInvalidInput       = errors.New("invalid input")
)

// Account represents a monetary account owned by a single user.
type Account struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Name        string          `json:"name"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CreateParams contains parameters for creating a new account
type CreateParams struct {
	UserID      string
	Name        string
	AccountType string
	Balance     decimal.Decimal
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.UserID == "" {
		return errors.New("valid user ID is required")
	}
	if p.Name == "" {
		return errors.New("account name is required")
	}
	if !IsValidAccountType(p.AccountType) {
		return ErrInvalidAccountType
	}
	if p.Balance.IsNegative() {
		return ErrNegativeBalance
	}
	return nil
}

// UpdateParams contains parameters for a partial account update.
// Nil fields are left unchanged.
type UpdateParams struct {
	Name        *string
	AccountType *string
	Balance     *decimal.Decimal
}

// Validate validates the update parameters
func (p UpdateParams) Validate() error {
	if p.Name == nil && p.AccountType == nil && p.Balance == nil {
		return ErrInvalidInput
	}
	if p.Name != nil && *p.Name == "" {
		return errors.New("account name cannot be empty")
	}
	if p.AccountType != nil && !IsValidAccountType(*p.AccountType) {
		return ErrInvalidAccountType
	}
	if p.Balance != nil && p.Balance.IsNegative() {
		return ErrNegativeBalance
	}
	return nil
}

// IsValidAccountType checks if the provided account type is valid.
func IsValidAccountType(t string) bool {
	_, ok := accountTypes[t]
	return ok
}
