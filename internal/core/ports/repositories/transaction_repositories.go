package repositories

import (
	"context"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID retrieves a transaction by ID regardless of owner.
	// Returns apperrors.ErrNotFound if absent.
	FindTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error)

	// FindTransactionsByUser retrieves all transactions owned by userID,
	// ordered by occurredAt descending.
	FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)

	// FindTransactionsInWindow retrieves transactions owned by userID with
	// occurredAt >= from. The boundary is inclusive; no upper bound is applied.
	FindTransactionsInWindow(ctx context.Context, userID string, from time.Time) ([]domain.Transaction, error)

	// DeleteTransaction removes a transaction by ID.
	// Returns apperrors.ErrNotFound if absent.
	DeleteTransaction(ctx context.Context, txnID string) error
}
