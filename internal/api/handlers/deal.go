package handlers

import (
	"net/http"

	"publiflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DealHandler handles HTTP requests for deal operations
type DealHandler struct {
	dealService   service.DealServiceInterface
	reportService service.ReportServiceInterface
}

// NewDealHandler creates a new deal handler
func NewDealHandler(dealService service.DealServiceInterface, reportService service.ReportServiceInterface) *DealHandler {
	return &DealHandler{
		dealService:   dealService,
		reportService: reportService,
	}
}

// ListDeals handles GET /deals
// @Summary List deals
// @Description List the user's deals with partner names, newest first
// @Tags deals
// @Produce json
// @Success 200 {array} service.DealResponse "Deals"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	deals, err := h.dealService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deals)
}

// CreateDeal handles POST /deals
// @Summary Create a deal
// @Description Create an active deal with a partner, starting today
// @Tags deals
// @Accept json
// @Produce json
// @Param deal body service.CreateDealRequest true "Deal data"
// @Success 201 {object} service.DealResponse "Successfully created deal"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Partner not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, err := h.dealService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, deal)
}

// GetDeal handles GET /deals/:id
// @Summary Get deal by ID
// @Description Get a deal with its partner and deliverables
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Success 200 {object} service.DealResponse "Deal"
// @Failure 400 {object} ErrorResponse "Invalid deal ID"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Security BearerAuth
// @Router /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "deal")
	if !ok {
		return
	}

	deal, err := h.dealService.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deal)
}

// UpdateDealStatus handles PATCH /deals/:id/status
// @Summary Update deal status
// @Tags deals
// @Accept json
// @Param id path string true "Deal ID (UUID)"
// @Param status body service.UpdateDealStatusRequest true "New status"
// @Success 204 "Status updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Security BearerAuth
// @Router /deals/{id}/status [patch]
func (h *DealHandler) UpdateDealStatus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "deal")
	if !ok {
		return
	}

	var req service.UpdateDealStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.dealService.UpdateStatus(c.Request.Context(), userID, id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteDeal handles DELETE /deals/:id
// @Summary Delete a deal
// @Description Delete a deal and all of its deliverables
// @Tags deals
// @Param id path string true "Deal ID (UUID)"
// @Success 204 "Deal deleted"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Security BearerAuth
// @Router /deals/{id} [delete]
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "deal")
	if !ok {
		return
	}

	if err := h.dealService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetReport handles GET /public/reports/:id
// @Summary Public deal report
// @Description Deliverables and completion progress of a deal, shared with the partner. No authentication.
// @Tags reports
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Success 200 {object} service.ReportResponse "Report"
// @Failure 400 {object} ErrorResponse "Invalid deal ID"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Router /public/reports/{id} [get]
func (h *DealHandler) GetReport(c *gin.Context) {
	id, ok := pathID(c, "id", "deal")
	if !ok {
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
