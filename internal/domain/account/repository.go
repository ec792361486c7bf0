package account

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines the interface for account data access.
// Implemented in the infrastructure layer (postgres, memory).
type Repository interface {
	// Create creates a new account
	Create(ctx context.Context, params CreateParams) (*Account, error)

	// GetByID retrieves an account by its ID regardless of owner.
	// Used by the ledger engine, where transfers cross ownership boundaries.
	GetByID(ctx context.Context, id string) (*Account, error)

	// GetOwned retrieves an account only if it is owned by the given user
	GetOwned(ctx context.Context, id, userID string) (*Account, error)

	// ListByUserID retrieves all accounts for a specific user
	ListByUserID(ctx context.Context, userID string) ([]*Account, error)

	// Update applies a partial update under the same ownership rule as GetOwned
	Update(ctx context.Context, id, userID string, params UpdateParams) (*Account, error)

	// Delete removes an account and cascades to its referencing transactions
	Delete(ctx context.Context, id, userID string) error

	// UpdateBalance overwrites the stored balance for an account.
	// Only the ledger engine writes balances through this method.
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error
}
