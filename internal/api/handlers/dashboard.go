package handlers

import (
	"net/http"

	"publiflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate views
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetOverview handles GET /dashboard
// @Summary Dashboard overview
// @Description Active deals, pending deliverables, estimated revenue and the next deliverables due
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardResponse "Overview"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	overview, err := h.dashboardService.Overview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetFinance handles GET /finance
// @Summary Finance summary
// @Description Revenue of active and completed deals against recorded expenses
// @Tags finance
// @Produce json
// @Success 200 {object} service.FinanceResponse "Finance summary"
// @Security BearerAuth
// @Router /finance [get]
func (h *DashboardHandler) GetFinance(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	finance, err := h.dashboardService.Finance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, finance)
}
