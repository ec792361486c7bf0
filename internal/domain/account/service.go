package account

import (
	"context"
	"fmt"
)

// UserDirectory is the slice of the user store the account service needs:
// an existence check consulted before creating an account for an owner.
type UserDirectory interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}

// Service contains the business logic for account operations
type Service struct {
	repo  Repository
	users UserDirectory
}

// NewService creates a new account service
func NewService(repo Repository, users UserDirectory) *Service {
	return &Service{repo: repo, users: users}
}

// Create creates a new account after checking the owner exists.
// The initial balance defaults to zero when the caller leaves it unset.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.users.UserExists(ctx, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	return s.repo.Create(ctx, params)
}

// Get retrieves an account, applying the ownership rule: an account that
// exists but belongs to another user is reported as not found.
func (s *Service) Get(ctx context.Context, accountID, userID string) (*Account, error) {
	if accountID == "" || userID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetOwned(ctx, accountID, userID)
}

// ListByUser retrieves all accounts for a user. An owner with no accounts
// is reported as ErrNoAccounts rather than an empty list; callers rely on
// that contract.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Account, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}

	accounts, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return accounts, nil
}

// Update applies a partial update to an owned account
func (s *Service) Update(ctx context.Context, accountID, userID string, params UpdateParams) (*Account, error) {
	if accountID == "" || userID == "" {
		return nil, ErrInvalidInput
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, accountID, userID, params)
}

// Delete removes an owned account. Transactions referencing the account are
// removed in the same cascade.
func (s *Service) Delete(ctx context.Context, accountID, userID string) error {
	if accountID == "" || userID == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, accountID, userID)
}
