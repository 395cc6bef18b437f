package dto

import (
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for recording a transaction.
// Category and Date are optional; the service applies the defaults
// (Uncategorized, creation time) when they are omitted.
type CreateTransactionRequest struct {
	Description string                 `json:"description" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Category    *string                `json:"category"`
	Date        *time.Time             `json:"date"`
}

// TransactionResponse defines the transaction data exposed by the API.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	OccurredAt    time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its API representation.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Category:      txn.Category,
		OccurredAt:    txn.OccurredAt,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionsResponse converts a slice of domain transactions,
// preserving input order.
func ToListTransactionsResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// DeleteTransactionResponse acknowledges a successful delete.
type DeleteTransactionResponse struct {
	Msg string `json:"msg"`
}
