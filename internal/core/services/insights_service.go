package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/fintrackr/finance_tracker_app/internal/core/ports/genai"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
)

// FallbackInsight is returned whenever the generative capability cannot
// produce a usable insight.
const FallbackInsight = "Track your spending to get personalized insights."

// insightsService implements the InsightsSvcFacade. The numeric part of the
// summary is a pure function of the windowed transactions; only the insight
// text involves the generative capability, and its failure modes are absorbed
// here.
type insightsService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepository
	generator genai.TextGenerator
	window    time.Duration
	now       func() time.Time
}

// InsightsServiceOption is a functional option for configuring the insights service.
type InsightsServiceOption func(*insightsService)

// WithClock overrides the wall clock, e.g. for tests.
func WithClock(now func() time.Time) InsightsServiceOption {
	return func(s *insightsService) {
		s.now = now
	}
}

// NewInsightsService creates a new insights service. window is the trailing
// interval over which the dashboard summary is computed.
func NewInsightsService(txnRepo portsrepo.TransactionRepository, generator genai.TextGenerator, window time.Duration, options ...InsightsServiceOption) portssvc.InsightsSvcFacade {
	svc := &insightsService{
		txnRepo:   txnRepo,
		generator: generator,
		window:    window,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InsightsSvcFacade = (*insightsService)(nil)

// GetDashboardSummary computes the dashboard summary over the user's windowed
// transactions and enriches it with a generated insight.
func (s *insightsService) GetDashboardSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	from := domain.WindowStart(s.now(), s.window)

	txns, err := s.txnRepo.FindTransactionsInWindow(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to load windowed transactions: %w", err)
	}

	summary := domain.Summarize(txns)
	summary.AIInsight = s.narrate(ctx, summary, txns)

	s.LogInfo(ctx, "Dashboard summary computed",
		slog.Int("transaction_count", len(txns)),
		slog.Int("health_score", summary.HealthScore))
	return &summary, nil
}

// narrate builds the insight prompt and delegates to the generative
// capability. Any failure, including an empty reply, falls back to the static
// sentence; the error is logged and never propagated.
func (s *insightsService) narrate(ctx context.Context, summary domain.DashboardSummary, txns []domain.Transaction) string {
	prompt := buildInsightPrompt(summary, txns)

	reply, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Insight generation failed, using fallback")
		return FallbackInsight
	}

	insight := strings.TrimSpace(reply)
	if insight == "" {
		s.LogWarn(ctx, "Insight generation returned empty text, using fallback")
		return FallbackInsight
	}
	return insight
}

// buildInsightPrompt embeds the totals and every expense in the window as
// "description: ₹amount", comma-joined in input iteration order.
func buildInsightPrompt(summary domain.DashboardSummary, txns []domain.Transaction) string {
	expenses := make([]string, 0, len(txns))
	for _, txn := range txns {
		if txn.Type != domain.Expense {
			continue
		}
		expenses = append(expenses, fmt.Sprintf("%s: ₹%s", txn.Description, txn.Amount.String()))
	}

	return fmt.Sprintf(
		`I am a user of a finance app. My total income in the last 30 days was ₹%s and total expenses were ₹%s. My recent expenses include: %s. Based on this, provide a short, actionable financial insight or tip for me in 1-2 sentences. Address me directly as "you". The currency is Indian Rupees (₹).`,
		summary.TotalIncome.String(),
		summary.TotalExpense.String(),
		strings.Join(expenses, ", "),
	)
}
