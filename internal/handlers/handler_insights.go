package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/fintrackr/finance_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// insightsHandler handles HTTP requests for the dashboard summary.
type insightsHandler struct {
	insightsService portssvc.InsightsSvcFacade
}

func newInsightsHandler(is portssvc.InsightsSvcFacade) *insightsHandler {
	return &insightsHandler{insightsService: is}
}

// registerInsightsRoutes registers all insights-related routes.
func registerInsightsRoutes(rg *gin.RouterGroup, insightsService portssvc.InsightsSvcFacade) {
	h := newInsightsHandler(insightsService)

	insights := rg.Group("/insights")
	{
		insights.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Get dashboard summary
// @Description Computes totals, category breakdown, health score and an AI insight over the trailing 30-day window
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /insights/summary [get]
func (h *insightsHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.insightsService.GetDashboardSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}
