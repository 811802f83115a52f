package handlers

import (
	"net/http"

	"publiflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for the user's profile
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile handles GET /profile
// @Summary Current user's profile
// @Description Returns the profile, creating a trial profile on first access
// @Tags profile
// @Produce json
// @Success 200 {object} service.ProfileResponse "Profile"
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile
// @Summary Update the current user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile data"
// @Success 200 {object} service.ProfileResponse "Updated profile"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetSubscription handles GET /profile/subscription
// @Summary Subscription state
// @Tags profile
// @Produce json
// @Success 200 {object} service.SubscriptionResponse "Subscription"
// @Security BearerAuth
// @Router /profile/subscription [get]
func (h *ProfileHandler) GetSubscription(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	subscription, err := h.profileService.Subscription(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}
