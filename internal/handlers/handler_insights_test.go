package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InsightsService ---
type MockInsightsService struct {
	mock.Mock
}

func (m *MockInsightsService) GetDashboardSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

var _ portssvc.InsightsSvcFacade = (*MockInsightsService)(nil)

// --- Test Suite ---
type InsightsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockInsights *MockInsightsService
	userID       string
	token        string
}

func (suite *InsightsHandlerTestSuite) SetupTest() {
	suite.mockInsights = new(MockInsightsService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Insights: suite.mockInsights,
	})
	suite.userID = uuid.NewString()
	suite.token = generateTestToken(suite.T(), suite.userID)
}

// --- Test Cases ---

func (suite *InsightsHandlerTestSuite) TestGetSummary_Success() {
	summary := &domain.DashboardSummary{
		TotalIncome:  decimal.NewFromInt(50000),
		TotalExpense: decimal.NewFromInt(16200),
		NetBalance:   decimal.NewFromInt(33800),
		HealthScore:  84,
		ExpenseByCategory: map[string]decimal.Decimal{
			"Housing":      decimal.NewFromInt(15000),
			"Food & Drink": decimal.NewFromInt(1200),
		},
		AIInsight: "Consider cooking at home more often.",
	}

	suite.mockInsights.On("GetDashboardSummary", mock.Anything, suite.userID).Return(summary, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/insights/summary", nil)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.DashboardSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.TotalIncome.Equal(summary.TotalIncome))
	suite.True(got.TotalExpense.Equal(summary.TotalExpense))
	suite.True(got.NetBalance.Equal(summary.NetBalance))
	suite.Equal(84, got.HealthScore)
	suite.True(got.ExpenseByCategory["Housing"].Equal(decimal.NewFromInt(15000)))
	suite.Equal(summary.AIInsight, got.AIInsight)
	suite.mockInsights.AssertExpectations(suite.T())
}

func (suite *InsightsHandlerTestSuite) TestGetSummary_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/insights/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockInsights.AssertNotCalled(suite.T(), "GetDashboardSummary", mock.Anything, mock.Anything)
}

func (suite *InsightsHandlerTestSuite) TestGetSummary_InvalidToken() {
	req, _ := http.NewRequest(http.MethodGet, "/insights/summary", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *InsightsHandlerTestSuite) TestGetSummary_ServiceError() {
	suite.mockInsights.On("GetDashboardSummary", mock.Anything, suite.userID).Return(nil, assert.AnError).Once()

	req, _ := http.NewRequest(http.MethodGet, "/insights/summary", nil)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func TestInsightsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InsightsHandlerTestSuite))
}
