package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ListTransactions retrieves all of the user's transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// CreateTransaction persists a new transaction owned by userID. Category
// defaults to Uncategorized and the date to now when the request omits them.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: type must be income or expense", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()

	category := domain.CategoryUncategorized
	if req.Category != nil && *req.Category != "" {
		category = *req.Category
	}

	occurredAt := now
	if req.Date != nil && !req.Date.IsZero() {
		occurredAt = *req.Date
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      category,
		OccurredAt:    occurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("category", txn.Category))
	return &txn, nil
}

// DeleteTransaction removes a transaction after verifying ownership. A
// missing transaction yields ErrNotFound and a foreign one ErrForbidden;
// the store is untouched in both cases.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, txnID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, txnID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to find transaction for deletion: %w", err)
	}

	if txn.UserID != userID {
		s.LogWarn(ctx, "User attempted to delete a transaction they do not own",
			slog.String("transaction_id", txnID),
			slog.String("owner_id", txn.UserID))
		return apperrors.ErrForbidden
	}

	if err := s.txnRepo.DeleteTransaction(ctx, txnID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", txnID))
	return nil
}
