package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TypeTransfer is the only transaction type the ledger engine produces.
// Debit and Credit exist solely as per-query display labels.
const TypeTransfer = "Transfer"

// Display directions computed at query time relative to a viewpoint account.
// Never persisted.
const (
	DisplayDebit  = "Debit"
	DisplayCredit = "Credit"
)

// ErrNoTransactions is returned when a listing matches nothing. Callers get
// this error instead of an empty list; tests assert the contract.
var ErrNoTransactions = errors.New("no transactions found")

// Transaction is an immutable record of a completed transfer.
type Transaction struct {
	ID                   string          `json:"id"`
	TransactionType      string          `json:"transactionType"`
	OriginAccountID      string          `json:"originAccountId"`
	DestinationAccountID string          `json:"destinationAccountId"`
	Amount               decimal.Decimal `json:"amount"`
	Description          string          `json:"description,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// WithDisplayType pairs a transaction with its viewer-relative direction.
type WithDisplayType struct {
	Transaction
	DisplayType string `json:"displayType"`
}

// CreateParams contains the fields of a transaction record at append time.
// The store assigns the id and creation timestamp.
type CreateParams struct {
	TransactionType      string
	OriginAccountID      string
	DestinationAccountID string
	Amount               decimal.Decimal
	Description          string
}

// Filter selects transactions by participant account and/or an inclusive
// creation-date range. Zero fields are ignored.
type Filter struct {
	AccountID string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// Matches reports whether tx satisfies the filter.
func (f Filter) Matches(tx *Transaction) bool {
	if f.AccountID != "" && tx.OriginAccountID != f.AccountID && tx.DestinationAccountID != f.AccountID {
		return false
	}
	if f.DateFrom != nil && tx.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && tx.CreatedAt.After(*f.DateTo) {
		return false
	}
	return true
}
