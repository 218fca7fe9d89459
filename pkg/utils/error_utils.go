package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TraceIDKey is the gin context key holding the request's trace id.
const TraceIDKey = "traceId"

// Standardized APIError response
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code,omitempty"` // Application-specific error code
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	TraceID    string `json:"traceId,omitempty"`
}

// NewAPIError creates a new APIError instance
func NewAPIError(statusCode int, code string, message string, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Details:    details,
	}
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// TraceID returns the trace id assigned to the request, or "" when none was set.
func TraceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// RespondWithError sends a standardized JSON error response
func RespondWithError(c *gin.Context, err *APIError) {
	if err.TraceID == "" {
		err.TraceID = TraceID(c)
	}
	c.AbortWithStatusJSON(err.StatusCode, err)
}

// Common Error Constants
const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
)

// Validation functions

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Helper to return a standard validation error
func RespondValidationFailed(c *gin.Context, details string) {
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeValidationFailed, "Input validation failed", details))
}

// RespondNotFound writes a 404 envelope with the given message.
func RespondNotFound(c *gin.Context, message string) {
	RespondWithError(c, NewAPIError(http.StatusNotFound, ErrCodeNotFound, message, ""))
}

// RespondConflict is used for requests that break a business rule.
func RespondConflict(c *gin.Context, details string) {
	RespondWithError(c, NewAPIError(http.StatusConflict, ErrCodeConflict, "Request conflicts with the current state", details))
}

// RespondInternalError hides the cause from the caller; log it before calling.
func RespondInternalError(c *gin.Context) {
	RespondWithError(c, NewAPIError(http.StatusInternalServerError, ErrCodeInternalServerError, "An unexpected error occurred", ""))
}
