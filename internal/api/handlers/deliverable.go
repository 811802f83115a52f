package handlers

import (
	"net/http"

	"publiflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DeliverableHandler handles HTTP requests for deliverable operations
type DeliverableHandler struct {
	deliverableService service.DeliverableServiceInterface
}

// NewDeliverableHandler creates a new deliverable handler
func NewDeliverableHandler(deliverableService service.DeliverableServiceInterface) *DeliverableHandler {
	return &DeliverableHandler{
		deliverableService: deliverableService,
	}
}

// CreateDeliverable handles POST /deals/:id/deliverables
// @Summary Add a deliverable to a deal
// @Tags deliverables
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Param deliverable body service.CreateDeliverableRequest true "Deliverable data"
// @Success 201 {object} service.DeliverableResponse "Successfully created deliverable"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Security BearerAuth
// @Router /deals/{id}/deliverables [post]
func (h *DeliverableHandler) CreateDeliverable(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	dealID, ok := pathID(c, "id", "deal")
	if !ok {
		return
	}

	var req service.CreateDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deliverable, err := h.deliverableService.Create(c.Request.Context(), userID, dealID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, deliverable)
}

// ToggleDeliverable handles POST /deliverables/:id/toggle
// @Summary Toggle a deliverable between pending and posted
// @Tags deliverables
// @Produce json
// @Param id path string true "Deliverable ID (UUID)"
// @Success 200 {object} service.DeliverableResponse "Updated deliverable"
// @Failure 404 {object} ErrorResponse "Deliverable not found"
// @Security BearerAuth
// @Router /deliverables/{id}/toggle [post]
func (h *DeliverableHandler) ToggleDeliverable(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "deliverable")
	if !ok {
		return
	}

	deliverable, err := h.deliverableService.Toggle(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deliverable)
}

// UpdateDeliverableStatus handles PATCH /deliverables/:id/status
// @Summary Set deliverable status
// @Tags deliverables
// @Accept json
// @Param id path string true "Deliverable ID (UUID)"
// @Param status body service.UpdateDeliverableStatusRequest true "New status"
// @Success 204 "Status updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Deliverable not found"
// @Security BearerAuth
// @Router /deliverables/{id}/status [patch]
func (h *DeliverableHandler) UpdateDeliverableStatus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "deliverable")
	if !ok {
		return
	}

	var req service.UpdateDeliverableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.deliverableService.SetStatus(c.Request.Context(), userID, id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteDeliverable handles DELETE /deliverables/:id
// @Summary Delete a deliverable
// @Tags deliverables
// @Param id path string true "Deliverable ID (UUID)"
// @Success 204 "Deliverable deleted"
// @Failure 404 {object} ErrorResponse "Deliverable not found"
// @Security BearerAuth
// @Router /deliverables/{id} [delete]
func (h *DeliverableHandler) DeleteDeliverable(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "deliverable")
	if !ok {
		return
	}

	if err := h.deliverableService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCalendar handles GET /calendar
// @Summary Deliverables due in a month
// @Description List deliverables whose due date falls in the given month, ordered by due date
// @Tags deliverables
// @Produce json
// @Param month query string true "Month in YYYY-MM format"
// @Success 200 {array} service.DeliverableResponse "Deliverables"
// @Failure 400 {object} ErrorResponse "Invalid month"
// @Security BearerAuth
// @Router /calendar [get]
func (h *DeliverableHandler) ListCalendar(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter is required"})
		return
	}

	deliverables, err := h.deliverableService.ListMonth(c.Request.Context(), userID, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deliverables)
}
