package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Ensure TransactionRepository implements the port.
var _ portsrepo.TransactionRepository = (*TransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, description, amount, type, category, occurred_at, created_at, created_by, last_updated_at, last_updated_by`

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions (transaction_id, user_id, description, amount, type, category, occurred_at, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.Description,
		txn.Amount,
		string(txn.Type),
		txn.Category,
		txn.OccurredAt,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var txnType string
	err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.Description,
		&txn.Amount,
		&txnType,
		&txn.Category,
		&txn.OccurredAt,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction row: %w", err)
	}
	txn.Type = domain.TransactionType(txnType)
	return &txn, nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	return scanTransaction(r.db.QueryRow(ctx, query, txnID))
}

func (r *TransactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY occurred_at DESC;`
	return r.queryTransactions(ctx, query, userID)
}

func (r *TransactionRepository) FindTransactionsInWindow(ctx context.Context, userID string, from time.Time) ([]domain.Transaction, error) {
	// Inclusive lower bound, no upper bound: future-dated rows are in scope.
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 AND occurred_at >= $2 ORDER BY occurred_at DESC;`
	return r.queryTransactions(ctx, query, userID, from)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *txn)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return txns, nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, txnID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, txnID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
