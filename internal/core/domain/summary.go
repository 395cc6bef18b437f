package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary is derived on demand from a user's transactions inside the
// trailing summary window. It is never persisted.
type DashboardSummary struct {
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	TotalExpense      decimal.Decimal            `json:"totalExpense"`
	NetBalance        decimal.Decimal            `json:"netBalance"` // Signed; may be negative
	HealthScore       int                        `json:"healthScore"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expenseByCategory"`
	AIInsight         string                     `json:"aiInsight"`
}

// Summarize computes aggregate totals, the per-category expense breakdown and
// the health score for a set of transactions. All fields are pure functions of
// the input set: amounts are exact decimals, so summation order cannot change
// the result. AIInsight is left empty; enrichment is the narrator's job.
func Summarize(transactions []Transaction) DashboardSummary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	for _, txn := range transactions {
		if txn.Type == Income {
			totalIncome = totalIncome.Add(txn.Amount)
			continue
		}
		totalExpense = totalExpense.Add(txn.Amount)
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
	}

	return DashboardSummary{
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		NetBalance:        totalIncome.Sub(totalExpense),
		HealthScore:       HealthScore(totalIncome, totalExpense),
		ExpenseByCategory: byCategory,
	}
}

// HealthScore maps the expense-to-income ratio onto a bounded [0,100] integer.
// With income, score = round(50 * (2 - expense/income)) clamped to the range:
// spending nothing scores 100, breaking even 50, spending double (or worse) 0.
// With no income the score is 0 if anything was spent, otherwise a neutral 50.
func HealthScore(totalIncome, totalExpense decimal.Decimal) int {
	if totalIncome.IsPositive() {
		ratio := totalExpense.Div(totalIncome)
		raw := decimal.NewFromInt(2).Sub(ratio).Mul(decimal.NewFromInt(50)).Round(0)
		score := int(raw.IntPart())
		if score < 0 {
			return 0
		}
		if score > 100 {
			return 100
		}
		return score
	}
	if totalExpense.IsPositive() {
		return 0
	}
	return 50
}

// WindowStart returns the inclusive lower bound of the trailing summary
// window ending at now. A transaction occurring exactly at the returned
// instant belongs to the window; there is no upper bound.
func WindowStart(now time.Time, window time.Duration) time.Time {
	return now.Add(-window)
}
