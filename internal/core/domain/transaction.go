package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is one of the two allowed transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single income or expense record owned by one user.
// Amount is an unsigned magnitude; direction is carried by Type, never by sign.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (e.g., UUID)
	UserID        string          `json:"userID"`        // Owner; FK -> User.userID (Not Null)
	Description   string          `json:"description"`   // Free text, non-empty
	Amount        decimal.Decimal `json:"amount"`        // Non-negative; precise decimal type
	Type          TransactionType `json:"type"`          // income or expense (Not Null)
	Category      string          `json:"category"`      // Defaults to CategoryUncategorized
	OccurredAt    time.Time       `json:"occurredAt"`    // Defaults to creation time
	AuditFields
}
