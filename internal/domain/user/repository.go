package user

import "context"

// Repository defines the interface for user data access.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id string, params UpdateParams) (*User, error)
	Delete(ctx context.Context, id string) error

	// UserExists satisfies account.UserDirectory: the existence check the
	// account service runs before creating an account for an owner.
	UserExists(ctx context.Context, id string) (bool, error)
}
