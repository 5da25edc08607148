package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareCodes service.ShareCodeService
	Logger     *slog.Logger
}

// ShareHandler serves store share codes
type ShareHandler struct {
	shareCodes service.ShareCodeService
	logger     *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareCodes: params.ShareCodes,
		logger:     params.Logger,
	}
}

// ResolveShareCodeRequest carries the text read from a scanned share code
type ResolveShareCodeRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// ResolveShareCodeResponse names the store a share code opens
type ResolveShareCodeResponse struct {
	StoreID string `json:"store_id"`
}

// StoreQR returns the PNG share code of the store in the path
func (h *ShareHandler) StoreQR(c echo.Context) error {
	png, err := h.shareCodes.StoreQR(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveShareCode maps a scanned share code back to its store
func (h *ShareHandler) ResolveShareCode(c echo.Context) error {
	var req ResolveShareCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid share code", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Share code payload is required", validator.Describe(err))
	}

	storeID, err := h.shareCodes.ParseStoreQR(req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ResolveShareCodeResponse{StoreID: storeID})
}
