package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/JPCabral04/PersonalFinance/internal/domain/transaction"
)

// TransactionRepository implements the transaction.Repository interface for
// PostgreSQL. The table is append-only under normal operation.
type TransactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new PostgreSQL transaction repository
func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, transaction_type, origin_account_id, destination_account_id, amount, description, created_at`

// Create appends a new transaction record with a server-assigned id and
// creation timestamp.
func (r *TransactionRepository) Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	query := `
		INSERT INTO transactions (id, transaction_type, origin_account_id, destination_account_id, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transactionColumns

	var tx transaction.Transaction
	var description sql.NullString

	err := r.db.QueryRowContext(
		ctx, query,
		uuid.NewString(), params.TransactionType, params.OriginAccountID,
		params.DestinationAccountID, params.Amount, nullStringFrom(params.Description),
	).Scan(
		&tx.ID, &tx.TransactionType, &tx.OriginAccountID, &tx.DestinationAccountID,
		&tx.Amount, &description, &tx.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if description.Valid {
		tx.Description = description.String
	}
	return &tx, nil
}

// List returns transactions matching the filter, most recent first.
// The date bounds are inclusive.
func (r *TransactionRepository) List(ctx context.Context, filter transaction.Filter) ([]*transaction.Transaction, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		n := strconv.Itoa(len(args))
		clauses = append(clauses, "(origin_account_id = $"+n+" OR destination_account_id = $"+n+")")
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		clauses = append(clauses, "created_at >= $"+strconv.Itoa(len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		clauses = append(clauses, "created_at <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction
	for rows.Next() {
		var tx transaction.Transaction
		var description sql.NullString

		err := rows.Scan(
			&tx.ID, &tx.TransactionType, &tx.OriginAccountID, &tx.DestinationAccountID,
			&tx.Amount, &description, &tx.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		if description.Valid {
			tx.Description = description.String
		}
		txs = append(txs, &tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txs, nil
}

// DeleteByAccountID removes all transactions referencing the account
func (r *TransactionRepository) DeleteByAccountID(ctx context.Context, accountID string) error {
	query := `DELETE FROM transactions WHERE origin_account_id = $1 OR destination_account_id = $1`

	if _, err := r.db.ExecContext(ctx, query, accountID); err != nil {
		return fmt.Errorf("failed to delete account transactions: %w", err)
	}
	return nil
}

// Clear removes all transactions
func (r *TransactionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}

func nullStringFrom(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
