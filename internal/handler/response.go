package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type businessURI struct {
	BusinessID string `uri:"businessId" binding:"required,max=64"`
}

type dateRangeQuery struct {
	DateStart string `form:"dateStart"`
	DateEnd   string `form:"dateEnd"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   errType,
		Message: message,
	})
}

// respondServiceError maps service errors onto HTTP statuses. Anything not
// caused by the request itself is a 500.
func respondServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, domain.ErrInvalidRange), errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrWindowTooLong):
		slog.WarnContext(ctx, "request rejected",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrBusinessNotFound):
		respondError(c, http.StatusNotFound, "not_found", "business not found")
	default:
		slog.ErrorContext(ctx, "request processing failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to process request")
	}
}
