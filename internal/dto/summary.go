package dto

import (
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse is the insights endpoint payload.
type DashboardSummaryResponse struct {
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	TotalExpense      decimal.Decimal            `json:"totalExpense"`
	NetBalance        decimal.Decimal            `json:"netBalance"`
	HealthScore       int                        `json:"healthScore"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expenseByCategory"`
	AIInsight         string                     `json:"aiInsight"`
}

// ToDashboardSummaryResponse converts the domain summary to its API representation.
func ToDashboardSummaryResponse(summary *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalIncome:       summary.TotalIncome,
		TotalExpense:      summary.TotalExpense,
		NetBalance:        summary.NetBalance,
		HealthScore:       summary.HealthScore,
		ExpenseByCategory: summary.ExpenseByCategory,
		AIInsight:         summary.AIInsight,
	}
}
