package handlers

import (
	"errors"
	"net/http"

	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/auth"
	"publiflow-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// badRequestErrors are domain errors caused by the request itself
var badRequestErrors = []error{
	apperrors.ErrInvalidStatus,
	apperrors.ErrInvalidIdeaStage,
	apperrors.ErrIdeaFieldsNotSupported,
	apperrors.ErrInvalidMonthFormat,
}

// statusFor maps a service error to its HTTP status
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) || apperrors.IsValidation(err) {
		return http.StatusBadRequest
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes err with the matching status; server errors are logged
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).WithField("path", c.FullPath()).Error("Request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// requireUser returns the authenticated user or writes 401
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses a UUID path parameter or writes 400
func pathID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}
