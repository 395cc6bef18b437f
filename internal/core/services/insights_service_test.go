package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const summaryWindow = 30 * 24 * time.Hour

// --- Test Suite ---
type InsightsServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockTransactionRepository
	mockGenerator *MockTextGenerator
	now           time.Time
	service       portssvc.InsightsSvcFacade
}

func (suite *InsightsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockGenerator = new(MockTextGenerator)
	suite.now = time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewInsightsService(
		suite.mockRepo,
		suite.mockGenerator,
		summaryWindow,
		services.WithClock(func() time.Time { return suite.now }),
	)
}

// --- Test Cases ---

func (suite *InsightsServiceTestSuite) TestGetDashboardSummary_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	from := suite.now.Add(-summaryWindow)
	txns := []domain.Transaction{
		{UserID: userID, Description: "Salary", Amount: decimal.NewFromInt(50000), Type: domain.Income, Category: domain.CategoryUncategorized},
		{UserID: userID, Description: "Rent", Amount: decimal.NewFromInt(15000), Type: domain.Expense, Category: "Housing"},
		{UserID: userID, Description: "Swiggy", Amount: decimal.NewFromInt(1200), Type: domain.Expense, Category: "Food & Drink"},
	}

	suite.mockRepo.On("FindTransactionsInWindow", ctx, userID, from).Return(txns, nil).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.Anything).Return("Consider cooking at home more often to trim your food spending.", nil).Once()

	summary, err := suite.service.GetDashboardSummary(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(50000)))
	suite.True(summary.TotalExpense.Equal(decimal.NewFromInt(16200)))
	suite.True(summary.NetBalance.Equal(decimal.NewFromInt(33800)))
	suite.Equal(84, summary.HealthScore)
	suite.True(summary.ExpenseByCategory["Housing"].Equal(decimal.NewFromInt(15000)))
	suite.True(summary.ExpenseByCategory["Food & Drink"].Equal(decimal.NewFromInt(1200)))
	suite.Equal("Consider cooking at home more often to trim your food spending.", summary.AIInsight)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockGenerator.AssertExpectations(suite.T())
}

func (suite *InsightsServiceTestSuite) TestGetDashboardSummary_PromptEmbedsTotalsAndExpenses() {
	ctx := context.Background()
	userID := uuid.NewString()
	txns := []domain.Transaction{
		{UserID: userID, Description: "Salary", Amount: decimal.NewFromInt(1000), Type: domain.Income},
		{UserID: userID, Description: "Rent", Amount: decimal.NewFromInt(400), Type: domain.Expense, Category: "Housing"},
		{UserID: userID, Description: "Metro card", Amount: decimal.NewFromInt(100), Type: domain.Expense, Category: "Transportation"},
	}

	suite.mockRepo.On("FindTransactionsInWindow", ctx, userID, mock.Anything).Return(txns, nil).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "₹1000") &&
			strings.Contains(prompt, "₹500") &&
			strings.Contains(prompt, "Rent: ₹400") &&
			strings.Contains(prompt, "Metro card: ₹100") &&
			!strings.Contains(prompt, "Salary: ₹")
	})).Return("Keep it up.", nil).Once()

	_, err := suite.service.GetDashboardSummary(ctx, userID)

	suite.Require().NoError(err)
	suite.mockGenerator.AssertExpectations(suite.T())
}

func (suite *InsightsServiceTestSuite) TestGetDashboardSummary_NoTransactions() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindTransactionsInWindow", ctx, userID, mock.Anything).Return([]domain.Transaction{}, nil).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.Anything).Return("Add your first transaction to get started.", nil).Once()

	summary, err := suite.service.GetDashboardSummary(ctx, userID)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.IsZero())
	suite.True(summary.TotalExpense.IsZero())
	suite.Equal(50, summary.HealthScore)
}

func (suite *InsightsServiceTestSuite) TestGetDashboardSummary_InsightFallbackOnError() {
	ctx := context.Background()
	userID := uuid.NewString()
	txns := []domain.Transaction{
		{UserID: userID, Description: "Lunch", Amount: decimal.NewFromInt(200), Type: domain.Expense, Category: "Food & Drink"},
	}

	suite.mockRepo.On("FindTransactionsInWindow", ctx, userID, mock.Anything).Return(txns, nil).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.Anything).Return("", assert.AnError).Once()

	summary, err := suite.service.GetDashboardSummary(ctx, userID)

	suite.Require().NoError(err, "a broken generator must not break the summary")
	suite.Equal(services.FallbackInsight, summary.AIInsight)
	suite.True(summary.TotalExpense.Equal(decimal.NewFromInt(200)), "numeric fields stay intact alongside the fallback")
	suite.Equal(0, summary.HealthScore)
}

func (suite *InsightsServiceTestSuite) TestGetDashboardSummary_InsightFallbackOnEmptyReply() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindTransactionsInWindow", ctx, userID, mock.Anything).Return([]domain.Transaction{}, nil).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.Anything).Return("  \n ", nil).Once()

	summary, err := suite.service.GetDashboardSummary(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(services.FallbackInsight, summary.AIInsight)
}

func (suite *InsightsServiceTestSuite) TestGetDashboardSummary_RepositoryError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindTransactionsInWindow", ctx, userID, mock.Anything).Return(nil, assert.AnError).Once()

	summary, err := suite.service.GetDashboardSummary(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, assert.AnError)
	suite.mockGenerator.AssertNotCalled(suite.T(), "GenerateText", mock.Anything, mock.Anything)
}

func TestInsightsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsightsServiceTestSuite))
}
