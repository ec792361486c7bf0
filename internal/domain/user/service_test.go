package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPCabral04/PersonalFinance/internal/shared/auth"
)

// MockRepository implements Repository with overridable behavior per test.
type MockRepository struct {
	CreateFunc     func(ctx context.Context, params CreateParams) (*User, error)
	GetByIDFunc    func(ctx context.Context, id string) (*User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*User, error)
	UpdateFunc     func(ctx context.Context, id string, params UpdateParams) (*User, error)
	DeleteFunc     func(ctx context.Context, id string) error
	UserExistsFunc func(ctx context.Context, id string) (bool, error)
}

func (m *MockRepository) Create(ctx context.Context, params CreateParams) (*User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, errors.New("not implemented")
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *MockRepository) Update(ctx context.Context, id string, params UpdateParams) (*User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return nil, errors.New("not implemented")
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *MockRepository) UserExists(ctx context.Context, id string) (bool, error) {
	if m.UserExistsFunc != nil {
		return m.UserExistsFunc(ctx, id)
	}
	return false, errors.New("not implemented")
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hash, never the password", func(t *testing.T) {
		repo := &MockRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*User, error) {
				return nil, ErrUserNotFound
			},
			CreateFunc: func(ctx context.Context, params CreateParams) (*User, error) {
				assert.NotEqual(t, "hunter22", params.PasswordHash)
				assert.NoError(t, auth.VerifyPassword(params.PasswordHash, "hunter22"))
				return &User{ID: "user-1", Name: params.Name, Email: params.Email, PasswordHash: params.PasswordHash}, nil
			},
		}
		svc := NewService(repo)

		u, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
	})

	t.Run("taken email", func(t *testing.T) {
		repo := &MockRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*User, error) {
				return &User{ID: "user-1", Email: email}, nil
			},
		}
		svc := NewService(repo)

		_, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("blank fields", func(t *testing.T) {
		svc := NewService(&MockRepository{})

		for _, args := range [][3]string{
			{"", "alice@example.com", "hunter22"},
			{"Alice", "", "hunter22"},
			{"Alice", "alice@example.com", ""},
		} {
			_, err := svc.Register(ctx, args[0], args[1], args[2])
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("lookup failure is not treated as available", func(t *testing.T) {
		repo := &MockRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*User, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := NewService(repo)

		_, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)
	stored := &User{ID: "user-1", Email: "alice@example.com", PasswordHash: hash}

	repo := &MockRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, ErrUserNotFound
		},
	}
	svc := NewService(repo)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "alice@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error as a wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "hunter22")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	name := "Alice B."

	t.Run("partial update", func(t *testing.T) {
		repo := &MockRepository{
			UpdateFunc: func(ctx context.Context, id string, params UpdateParams) (*User, error) {
				require.NotNil(t, params.Name)
				return &User{ID: id, Name: *params.Name}, nil
			},
		}
		svc := NewService(repo)

		u, err := svc.Update(ctx, "user-1", UpdateParams{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Alice B.", u.Name)
	})

	t.Run("empty update", func(t *testing.T) {
		svc := NewService(&MockRepository{})

		_, err := svc.Update(ctx, "user-1", UpdateParams{})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
