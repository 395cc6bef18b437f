package services

import (
	"context"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// InsightsSvcFacade computes the dashboard summary for a user.
type InsightsSvcFacade interface {
	// GetDashboardSummary derives totals, category breakdown, health score
	// and the AI insight from the user's transactions inside the trailing
	// summary window. A generative-text failure never fails the call; the
	// insight falls back to a static sentence.
	GetDashboardSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error)
}
