package handlers

import (
	"net/http"

	"publiflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PartnerHandler handles HTTP requests for partner operations
type PartnerHandler struct {
	partnerService service.PartnerServiceInterface
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(partnerService service.PartnerServiceInterface) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// ListPartners handles GET /partners
// @Summary List partners
// @Description List the brands the user works with, newest first
// @Tags partners
// @Produce json
// @Success 200 {array} service.PartnerResponse "Partners"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /partners [get]
func (h *PartnerHandler) ListPartners(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	partners, err := h.partnerService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, partners)
}

// CreatePartner handles POST /partners
// @Summary Create a partner
// @Tags partners
// @Accept json
// @Produce json
// @Param partner body service.CreatePartnerRequest true "Partner data"
// @Success 201 {object} service.PartnerResponse "Successfully created partner"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /partners [post]
func (h *PartnerHandler) CreatePartner(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partner, err := h.partnerService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, partner)
}

// DeletePartner handles DELETE /partners/:id
// @Summary Delete a partner
// @Tags partners
// @Param id path string true "Partner ID (UUID)"
// @Success 204 "Partner deleted"
// @Failure 400 {object} ErrorResponse "Invalid partner ID"
// @Failure 404 {object} ErrorResponse "Partner not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /partners/{id} [delete]
func (h *PartnerHandler) DeletePartner(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "partner")
	if !ok {
		return
	}

	if err := h.partnerService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
