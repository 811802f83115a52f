package handlers

import (
	"net/http"

	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/logger"
	"publiflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles the external calendar connection and sync
type CalendarHandler struct {
	connectionService service.CalendarConnectionServiceInterface
	syncService       service.CalendarSyncServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(connectionService service.CalendarConnectionServiceInterface, syncService service.CalendarSyncServiceInterface) *CalendarHandler {
	return &CalendarHandler{
		connectionService: connectionService,
		syncService:       syncService,
	}
}

// GetConnectURL handles GET /calendar/google/connect
// @Summary Calendar consent URL
// @Description Returns the provider consent page URL carrying a signed state for the current user
// @Tags calendar
// @Produce json
// @Success 200 {object} service.ConnectURLResponse "Consent URL"
// @Failure 503 {object} ErrorResponse "Calendar credentials not configured"
// @Security BearerAuth
// @Router /calendar/google/connect [get]
func (h *CalendarHandler) GetConnectURL(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	resp, err := h.connectionService.ConnectURL(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Callback handles GET /calendar/google/callback
// @Summary Calendar consent callback
// @Description Provider redirect target. The user is identified by the signed state, not by a bearer token.
// @Tags calendar
// @Produce json
// @Param state query string true "Signed state"
// @Param code query string true "Authorization code"
// @Success 200 {object} map[string]interface{} "Connected"
// @Failure 400 {object} ErrorResponse "Missing code"
// @Failure 401 {object} ErrorResponse "Invalid state or rejected code"
// @Router /calendar/google/callback [get]
func (h *CalendarHandler) Callback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calendar authorization denied: " + errParam})
		return
	}

	userID, err := h.connectionService.HandleCallback(c.Request.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithContext(logger.ContextWithUserID(c.Request.Context(), userID.String())).Info("Calendar connected")
	c.JSON(http.StatusOK, gin.H{"connected": true, "provider": service.ProviderGoogle})
}

// GetStatus handles GET /calendar/google/status
// @Summary Calendar connection status
// @Tags calendar
// @Produce json
// @Success 200 {object} service.CalendarStatusResponse "Status"
// @Security BearerAuth
// @Router /calendar/google/status [get]
func (h *CalendarHandler) GetStatus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	status, err := h.connectionService.Status(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Disconnect handles DELETE /calendar/google
// @Summary Disconnect the calendar
// @Tags calendar
// @Success 204 "Disconnected"
// @Failure 404 {object} ErrorResponse "No calendar connection"
// @Security BearerAuth
// @Router /calendar/google [delete]
func (h *CalendarHandler) Disconnect(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.connectionService.Disconnect(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Sync handles POST /calendar/sync
// @Summary Push pending deliverables to the calendar
// @Description Creates one all-day event per pending deliverable with a due date. Per-item failures are counted, not fatal.
// @Tags calendar
// @Produce json
// @Success 200 {object} service.SyncResult "Run summary"
// @Failure 401 {object} service.SyncResult "Calendar reauthentication required"
// @Failure 500 {object} service.SyncResult "Sync failed"
// @Security BearerAuth
// @Router /calendar/sync [post]
func (h *CalendarHandler) Sync(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	result := h.syncService.SyncForUser(c.Request.Context(), userID)
	switch {
	case result.Success:
		c.JSON(http.StatusOK, result)
	case result.Error == apperrors.ErrReauthenticationRequired.Error():
		c.JSON(http.StatusUnauthorized, result)
	default:
		c.JSON(http.StatusInternalServerError, result)
	}
}
