package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrPartnerNotFound            = &NotFoundError{Entity: "partner"}
	ErrDealNotFound               = &NotFoundError{Entity: "deal"}
	ErrDeliverableNotFound        = &NotFoundError{Entity: "deliverable"}
	ErrIdeaNotFound               = &NotFoundError{Entity: "idea"}
	ErrExpenseNotFound            = &NotFoundError{Entity: "expense"}
	ErrProfileNotFound            = &NotFoundError{Entity: "profile"}
	ErrCalendarConnectionNotFound = &NotFoundError{Entity: "calendar connection"}
)

// Business Logic Errors
var (
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidIdeaStage       = errors.New("status is not a stage of the active idea board")
	ErrIdeaFieldsNotSupported = errors.New("platform and priority are not supported by the active idea board")
	ErrInvalidMonthFormat     = errors.New("invalid month format, expected YYYY-MM")
)

// Calendar Sync Errors
var (
	ErrReauthenticationRequired = &AuthenticationError{Message: "reauthentication required"}
	ErrDeliverableFetch         = errors.New("fetch error")
	ErrUnexpected               = errors.New("unexpected error")
	ErrInvalidOAuthState        = &AuthenticationError{Message: "invalid oauth state"}
)

// Authentication Errors
var (
	ErrMissingToken  = &AuthenticationError{Message: "authorization header required"}
	ErrInvalidToken  = &AuthenticationError{Message: "invalid or expired token"}
	ErrInvalidUserID = &AuthenticationError{Message: "token subject is not a valid user id"}
)

// Configuration Errors
var (
	ErrGoogleCredentialsNotSet = &ConfigurationError{Message: "GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
