package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/JPCabral04/PersonalFinance/internal/domain/account"
	"github.com/JPCabral04/PersonalFinance/internal/domain/transaction"
)

// Domain errors
var (
	ErrAccountNotFound   = errors.New("origin or destination account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("transfer amount must be a positive number")
	ErrSameAccount       = errors.New("origin and destination accounts must differ")

	// ErrPartialTransfer reports that the debit leg committed but a later
	// step did not. The wrapped message carries both legs so a reconciling
	// process can repair the stored state.
	ErrPartialTransfer = errors.New("partial transfer failure")
)

// AccountStore is the slice of the account repository the engine needs.
type AccountStore interface {
	GetByID(ctx context.Context, id string) (*account.Account, error)
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error
}

// TransactionStore is the slice of the transaction repository the engine needs.
type TransactionStore interface {
	Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
	List(ctx context.Context, filter transaction.Filter) ([]*transaction.Transaction, error)
	Clear(ctx context.Context) error
}

// TransferParams are the inputs to a single transfer.
type TransferParams struct {
	OriginAccountID      string
	DestinationAccountID string
	Amount               decimal.Decimal
	Description          string
}

// Service is the ledger engine: it executes atomic transfers between two
// accounts and answers historical queries with viewer-relative direction
// labels. It is the only component that writes balances.
type Service struct {
	accounts     AccountStore
	transactions TransactionStore
	locks        *accountLocker
}

// NewService creates a new ledger service over the given stores.
func NewService(accounts AccountStore, transactions TransactionStore) *Service {
	return &Service{
		accounts:     accounts,
		transactions: transactions,
		locks:        newAccountLocker(),
	}
}

// Transfer atomically moves amount from the origin account to the
// destination account and appends the transaction record for it.
//
// Validation failures leave no side effects. Once the origin debit has been
// durably committed, any later failure surfaces as ErrPartialTransfer rather
// than being retried or swallowed.
func (s *Service) Transfer(ctx context.Context, params TransferParams) (*transaction.Transaction, error) {
	// The HTTP layer validates these too; re-check here so the engine
	// stays safe when invoked directly.
	if params.OriginAccountID == params.DestinationAccountID {
		return nil, ErrSameAccount
	}
	if !params.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	unlock := s.locks.LockPair(params.OriginAccountID, params.DestinationAccountID)
	defer unlock()

	origin, err := s.accounts.GetByID(ctx, params.OriginAccountID)
	if err != nil {
		return nil, resolveErr(err)
	}
	destination, err := s.accounts.GetByID(ctx, params.DestinationAccountID)
	if err != nil {
		return nil, resolveErr(err)
	}

	if origin.Balance.LessThan(params.Amount) {
		return nil, ErrInsufficientFunds
	}

	newOriginBalance := origin.Balance.Sub(params.Amount)
	newDestinationBalance := destination.Balance.Add(params.Amount)

	if err := s.accounts.UpdateBalance(ctx, origin.ID, newOriginBalance); err != nil {
		// Debit leg never committed; the ledger is still consistent.
		return nil, fmt.Errorf("failed to persist origin debit: %w", err)
	}
	if err := s.accounts.UpdateBalance(ctx, destination.ID, newDestinationBalance); err != nil {
		return nil, fmt.Errorf(
			"%w: origin %s debited %s but destination %s was not credited: %v",
			ErrPartialTransfer, origin.ID, params.Amount, destination.ID, err,
		)
	}

	tx, err := s.transactions.Create(ctx, transaction.CreateParams{
		TransactionType:      transaction.TypeTransfer,
		OriginAccountID:      origin.ID,
		DestinationAccountID: destination.ID,
		Amount:               params.Amount,
		Description:          params.Description,
	})
	if err != nil {
		return nil, fmt.Errorf(
			"%w: balances for %s and %s updated but the transaction record was not persisted: %v",
			ErrPartialTransfer, origin.ID, destination.ID, err,
		)
	}

	return tx, nil
}

// ListTransactions returns transactions matching the filter, most recent
// first, each labeled with its direction relative to the filter's account:
// Debit when that account is the origin, Credit otherwise (including when no
// viewpoint account was supplied). A result set that matches nothing is an
// error, not an empty list.
func (s *Service) ListTransactions(ctx context.Context, filter transaction.Filter) ([]*transaction.WithDisplayType, error) {
	txs, err := s.transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, transaction.ErrNoTransactions
	}

	labeled := make([]*transaction.WithDisplayType, 0, len(txs))
	for _, tx := range txs {
		display := transaction.DisplayCredit
		if filter.AccountID != "" && tx.OriginAccountID == filter.AccountID {
			display = transaction.DisplayDebit
		}
		labeled = append(labeled, &transaction.WithDisplayType{
			Transaction: *tx,
			DisplayType: display,
		})
	}
	return labeled, nil
}

// ClearTransactions wipes the transaction store. Reset tooling for tests
// and development environments.
func (s *Service) ClearTransactions(ctx context.Context) error {
	return s.transactions.Clear(ctx)
}

func resolveErr(err error) error {
	if errors.Is(err, account.ErrAccountNotFound) {
		return ErrAccountNotFound
	}
	return err
}
