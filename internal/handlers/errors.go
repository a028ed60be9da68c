package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/books_ledger/internal/apperrors"
)

// statusFor maps the service error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrNoTransactions):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err in the usual {"error": ...} shape. Domain errors carry their message to
// the caller; anything else is logged and replaced by fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}

	body := gin.H{"error": err.Error()}
	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) {
		body["missingIDs"] = conflict.MissingIDs
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, body)
}

// bindError answers a request whose body or query could not be bound.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
