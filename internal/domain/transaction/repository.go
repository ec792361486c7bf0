package transaction

import "context"

// Repository defines the interface for the append-only transaction store.
type Repository interface {
	// Create appends a new transaction record, assigning its id and
	// creation timestamp. Records are never mutated afterwards.
	Create(ctx context.Context, params CreateParams) (*Transaction, error)

	// List returns transactions matching the filter, most recent first
	List(ctx context.Context, filter Filter) ([]*Transaction, error)

	// DeleteByAccountID removes all transactions referencing the account,
	// as either origin or destination. Account-deletion cascade only.
	DeleteByAccountID(ctx context.Context, accountID string) error

	// Clear removes all transactions. Test/reset tooling, not user flow.
	Clear(ctx context.Context) error
}
