package services

import (
	"context"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// ListTransactions retrieves all transactions owned by userID, newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions.
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction owned by userID, applying
	// the category and date defaults when the request omits them.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction. Returns apperrors.ErrNotFound
	// if it does not exist and apperrors.ErrForbidden if userID is not the
	// owner; in both cases the store is left unchanged.
	DeleteTransaction(ctx context.Context, userID string, txnID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
