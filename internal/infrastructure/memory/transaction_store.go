package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JPCabral04/PersonalFinance/internal/domain/transaction"
)

// TransactionStore is an in-memory transaction.Repository.
type TransactionStore struct {
	mu  sync.RWMutex
	txs []*transaction.Transaction
}

// NewTransactionStore creates an empty transaction store
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{}
}

func (s *TransactionStore) Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction.Transaction{
		ID:                   uuid.NewString(),
		TransactionType:      params.TransactionType,
		OriginAccountID:      params.OriginAccountID,
		DestinationAccountID: params.DestinationAccountID,
		Amount:               params.Amount,
		Description:          params.Description,
		CreatedAt:            time.Now().UTC(),
	}
	s.txs = append(s.txs, tx)

	cp := *tx
	return &cp, nil
}

func (s *TransactionStore) List(ctx context.Context, filter transaction.Filter) ([]*transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*transaction.Transaction
	for _, tx := range s.txs {
		if filter.Matches(tx) {
			cp := *tx
			matched = append(matched, &cp)
		}
	}

	// Most recent first; ties keep append order stable enough for callers.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (s *TransactionStore) DeleteByAccountID(ctx context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.txs[:0]
	for _, tx := range s.txs {
		if tx.OriginAccountID != accountID && tx.DestinationAccountID != accountID {
			kept = append(kept, tx)
		}
	}
	s.txs = kept
	return nil
}

func (s *TransactionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs = nil
	return nil
}
