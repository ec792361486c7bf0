package user

import (
	"context"
	"errors"

	"github.com/JPCabral04/PersonalFinance/internal/shared/auth"
)

// Service contains the business logic for user registration and profiles.
// The ledger core treats it as an external collaborator.
type Service struct {
	repo Repository
}

// NewService creates a new user service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, CreateParams{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
}

// Authenticate verifies credentials and returns the user on success.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.VerifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get retrieves a user by id
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial profile update
func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*User, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	if params.Name == nil && params.Email == nil {
		return nil, ErrInvalidInput
	}
	return s.repo.Update(ctx, id, params)
}

// Delete removes a user record
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
