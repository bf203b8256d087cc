package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weddinghub/internal/services"
)

// DashboardHandler serves the aggregate read model.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns the countdown, task progress, and budget totals for one
// wedding.
// @Summary     Get dashboard summary
// @Description Countdown, task progress percentages, and budget totals for a wedding
// @Tags        dashboard
// @Produce     json
// @Param       id path int true "Wedding ID"
// @Success     200 {object} services.DashboardSummary "Dashboard summary"
// @Failure     404 {object} ErrorResponse "Wedding not found"
// @Router      /weddings/{id}/dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.Summary(weddingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
