package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

type SettingsHandler struct {
	invalidator domain.SettingsInvalidator
}

func NewSettingsHandler(invalidator domain.SettingsInvalidator) *SettingsHandler {
	return &SettingsHandler{
		invalidator: invalidator,
	}
}

type InvalidateSettingsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *SettingsHandler) HandleInvalidateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var uri businessURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid business id")
		return
	}

	if err := h.invalidator.InvalidateSettings(ctx, uri.BusinessID); err != nil {
		slog.ErrorContext(ctx, "failed to invalidate settings cache",
			slog.String("business_id", uri.BusinessID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to invalidate settings")
		return
	}

	slog.InfoContext(ctx, "settings cache invalidated",
		slog.String("business_id", uri.BusinessID),
	)

	c.JSON(http.StatusOK, InvalidateSettingsResponse{
		Success: true,
		Message: "settings invalidated",
	})
}
