package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"balanza/internal/services"
)

// DashboardHandler serves aggregated figures for the finance dashboard.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns the dashboard aggregates for the active business
// @Summary     Get dashboard stats
// @Description Get current-month income and expense totals, net, fund totals, card debt, and recent transactions
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string true "Business ID"
// @Success     200 {object} services.DashboardStats "Dashboard stats"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	businessID, err := getBusinessID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.dashboardService.GetStats(businessID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
