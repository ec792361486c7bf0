// Package memory provides map-backed implementations of the domain
// repositories. They serve local development without a database and give the
// concurrency tests a store with no I/O in the way.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JPCabral04/PersonalFinance/internal/domain/account"
)

// AccountStore is an in-memory account.Repository.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*account.Account

	// transactions participate in the delete cascade
	transactions *TransactionStore
}

// NewAccountStore creates an empty account store. The transaction store is
// needed for the account-deletion cascade and may be shared with the ledger.
func NewAccountStore(transactions *TransactionStore) *AccountStore {
	return &AccountStore{
		accounts:     make(map[string]*account.Account),
		transactions: transactions,
	}
}

func (s *AccountStore) Create(ctx context.Context, params account.CreateParams) (*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	acc := &account.Account{
		ID:          uuid.NewString(),
		UserID:      params.UserID,
		Name:        params.Name,
		AccountType: params.AccountType,
		Balance:     params.Balance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.accounts[acc.ID] = acc

	cp := *acc
	return &cp, nil
}

func (s *AccountStore) GetByID(ctx context.Context, id string) (*account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

func (s *AccountStore) GetOwned(ctx context.Context, id, userID string) (*account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok || acc.UserID != userID {
		return nil, account.ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

func (s *AccountStore) ListByUserID(ctx context.Context, userID string) ([]*account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var accounts []*account.Account
	for _, acc := range s.accounts {
		if acc.UserID == userID {
			cp := *acc
			accounts = append(accounts, &cp)
		}
	}
	return accounts, nil
}

func (s *AccountStore) Update(ctx context.Context, id, userID string, params account.UpdateParams) (*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok || acc.UserID != userID {
		return nil, account.ErrAccountNotFound
	}

	if params.Name != nil {
		acc.Name = *params.Name
	}
	if params.AccountType != nil {
		acc.AccountType = *params.AccountType
	}
	if params.Balance != nil {
		acc.Balance = *params.Balance
	}
	acc.UpdatedAt = time.Now().UTC()

	cp := *acc
	return &cp, nil
}

func (s *AccountStore) Delete(ctx context.Context, id, userID string) error {
	s.mu.Lock()
	acc, ok := s.accounts[id]
	if !ok || acc.UserID != userID {
		s.mu.Unlock()
		return account.ErrAccountNotFound
	}
	delete(s.accounts, id)
	s.mu.Unlock()

	return s.transactions.DeleteByAccountID(ctx, id)
}

func (s *AccountStore) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return account.ErrAccountNotFound
	}
	acc.Balance = balance
	acc.UpdatedAt = time.Now().UTC()
	return nil
}
