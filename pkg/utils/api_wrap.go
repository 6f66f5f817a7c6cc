package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		TraceID: c.GetString("trace_id"),
	})
}

func RespondErrorDetails(c *gin.Context, code int, message, details string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		Details: details,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var upstream *UpstreamError

	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrOnboardingNotFound):
		RespondError(c, http.StatusNotFound, "Onboarding not found")
	case errors.Is(err, ErrActivityNotFound):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already exists")
	case errors.As(err, &upstream):
		log.Printf("Upstream error from %s: %v", upstream.Service, err)
		code := upstream.StatusCode
		if code < 400 || code > 599 {
			code = http.StatusInternalServerError
		}
		RespondErrorDetails(c, code, "Upstream service error", upstream.Detail)
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
