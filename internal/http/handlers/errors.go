package handlers

import (
	"net/http"

	"voyago/internal/domain"
	"voyago/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Every class is
// recoverable: the client corrects its input (or retries confirmation) and
// calls again.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsInvalidSelection(err):
		respondError(c, http.StatusConflict, "invalid_selection", err.Error())
	case domain.IsPrecondition(err):
		respondError(c, http.StatusConflict, "precondition_failed", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsPersistence(err):
		respondError(c, http.StatusInternalServerError, "persistence_error", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
