package account

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRepository implements Repository with overridable behavior per test.
type MockRepository struct {
	CreateFunc        func(ctx context.Context, params CreateParams) (*Account, error)
	GetByIDFunc       func(ctx context.Context, id string) (*Account, error)
	GetOwnedFunc      func(ctx context.Context, id, userID string) (*Account, error)
	ListByUserIDFunc  func(ctx context.Context, userID string) ([]*Account, error)
	UpdateFunc        func(ctx context.Context, id, userID string, params UpdateParams) (*Account, error)
	DeleteFunc        func(ctx context.Context, id, userID string) error
	UpdateBalanceFunc func(ctx context.Context, id string, balance decimal.Decimal) error
}

func (m *MockRepository) Create(ctx context.Context, params CreateParams) (*Account, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, errors.New("not implemented")
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *MockRepository) GetOwned(ctx context.Context, id, userID string) (*Account, error) {
	if m.GetOwnedFunc != nil {
		return m.GetOwnedFunc(ctx, id, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockRepository) ListByUserID(ctx context.Context, userID string) ([]*Account, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockRepository) Update(ctx context.Context, id, userID string, params UpdateParams) (*Account, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, userID, params)
	}
	return nil, errors.New("not implemented")
}

func (m *MockRepository) Delete(ctx context.Context, id, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return errors.New("not implemented")
}

func (m *MockRepository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, id, balance)
	}
	return errors.New("not implemented")
}

// MockUserDirectory answers user existence checks.
type MockUserDirectory struct {
	UserExistsFunc func(ctx context.Context, userID string) (bool, error)
}

func (m *MockUserDirectory) UserExists(ctx context.Context, userID string) (bool, error) {
	if m.UserExistsFunc != nil {
		return m.UserExistsFunc(ctx, userID)
	}
	return true, nil
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	params := CreateParams{
		UserID:      "user-1",
		Name:        "Main Checking",
		AccountType: "Checking",
		Balance:     decimal.NewFromInt(100),
	}

	t.Run("creates when the owner exists", func(t *testing.T) {
		repo := &MockRepository{
			CreateFunc: func(ctx context.Context, p CreateParams) (*Account, error) {
				assert.Equal(t, params, p)
				return &Account{ID: "acc-1", UserID: p.UserID, Name: p.Name, AccountType: p.AccountType, Balance: p.Balance}, nil
			},
		}
		svc := NewService(repo, &MockUserDirectory{})

		acc, err := svc.Create(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "acc-1", acc.ID)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("unknown owner", func(t *testing.T) {
		svc := NewService(&MockRepository{}, &MockUserDirectory{
			UserExistsFunc: func(ctx context.Context, userID string) (bool, error) { return false, nil },
		})

		_, err := svc.Create(ctx, params)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("directory lookup failure", func(t *testing.T) {
		svc := NewService(&MockRepository{}, &MockUserDirectory{
			UserExistsFunc: func(ctx context.Context, userID string) (bool, error) {
				return false, errors.New("connection refused")
			},
		})

		_, err := svc.Create(ctx, params)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("invalid params never reach the repository", func(t *testing.T) {
		repo := &MockRepository{
			CreateFunc: func(ctx context.Context, p CreateParams) (*Account, error) {
				t.Fatal("repository must not be called")
				return nil, nil
			},
		}
		svc := NewService(repo, &MockUserDirectory{})

		bad := params
		bad.AccountType = "Offshore"
		_, err := svc.Create(ctx, bad)
		require.ErrorIs(t, err, ErrInvalidAccountType)
	})
}

func TestServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates the ownership rule to the repository", func(t *testing.T) {
		repo := &MockRepository{
			GetOwnedFunc: func(ctx context.Context, id, userID string) (*Account, error) {
				assert.Equal(t, "acc-1", id)
				assert.Equal(t, "user-1", userID)
				return &Account{ID: id, UserID: userID}, nil
			},
		}
		svc := NewService(repo, &MockUserDirectory{})

		acc, err := svc.Get(ctx, "acc-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "acc-1", acc.ID)
	})

	t.Run("foreign account surfaces as not found", func(t *testing.T) {
		repo := &MockRepository{
			GetOwnedFunc: func(ctx context.Context, id, userID string) (*Account, error) {
				return nil, ErrAccountNotFound
			},
		}
		svc := NewService(repo, &MockUserDirectory{})

		_, err := svc.Get(ctx, "acc-1", "intruder")
		require.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("blank ids", func(t *testing.T) {
		svc := NewService(&MockRepository{}, &MockUserDirectory{})

		_, err := svc.Get(ctx, "", "user-1")
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = svc.Get(ctx, "acc-1", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestServiceListByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the owner's accounts", func(t *testing.T) {
		repo := &MockRepository{
			ListByUserIDFunc: func(ctx context.Context, userID string) ([]*Account, error) {
				return []*Account{{ID: "acc-1"}, {ID: "acc-2"}}, nil
			},
		}
		svc := NewService(repo, &MockUserDirectory{})

		accounts, err := svc.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, accounts, 2)
	})

	t.Run("no accounts is an error, not an empty list", func(t *testing.T) {
		repo := &MockRepository{
			ListByUserIDFunc: func(ctx context.Context, userID string) ([]*Account, error) {
				return nil, nil
			},
		}
		svc := NewService(repo, &MockUserDirectory{})

		_, err := svc.ListByUser(ctx, "user-1")
		require.ErrorIs(t, err, ErrNoAccounts)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()
	name := "Renamed"

	t.Run("applies a partial update", func(t *testing.T) {
		repo := &MockRepository{
			UpdateFunc: func(ctx context.Context, id, userID string, params UpdateParams) (*Account, error) {
				require.NotNil(t, params.Name)
				return &Account{ID: id, UserID: userID, Name: *params.Name}, nil
			},
		}
		svc := NewService(repo, &MockUserDirectory{})

		acc, err := svc.Update(ctx, "acc-1", "user-1", UpdateParams{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", acc.Name)
	})

	t.Run("empty update is rejected before the repository", func(t *testing.T) {
		svc := NewService(&MockRepository{}, &MockUserDirectory{})

		_, err := svc.Update(ctx, "acc-1", "user-1", UpdateParams{})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an owned account", func(t *testing.T) {
		called := false
		repo := &MockRepository{
			DeleteFunc: func(ctx context.Context, id, userID string) error {
				called = true
				return nil
			},
		}
		svc := NewService(repo, &MockUserDirectory{})

		require.NoError(t, svc.Delete(ctx, "acc-1", "user-1"))
		assert.True(t, called)
	})

	t.Run("missing account", func(t *testing.T) {
		repo := &MockRepository{
			DeleteFunc: func(ctx context.Context, id, userID string) error {
				return ErrAccountNotFound
			},
		}
		svc := NewService(repo, &MockUserDirectory{})

		require.ErrorIs(t, svc.Delete(ctx, "missing", "user-1"), ErrAccountNotFound)
	})
}
