package handler

import (
	"log/slog"
	"net/http"

	"iothub/internal/delivery/http/response"
	"iothub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type renameSubDeviceRequest struct {
	NewID string `json:"newId" validate:"required"`
}

// SubDeviceHandler exposes sub-device maintenance on the REST surface.
// Renames go through the same use case path as realtime writes, so the
// parent device's recipients hear about the change either way.
type SubDeviceHandler struct {
	uc     usecase.SubDeviceUsecase
	logger *slog.Logger
}

// NewSubDeviceHandler is the constructor for SubDeviceHandler, injected by Fx.
func NewSubDeviceHandler(uc usecase.SubDeviceUsecase, logger *slog.Logger) *SubDeviceHandler {
	return &SubDeviceHandler{uc: uc, logger: logger}
}

// Rename rewrites a sub-device id across every collection that copies it.
func (h *SubDeviceHandler) Rename(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return missingIdentity(c)
	}

	var req renameSubDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sub-device rename input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	subDeviceID := c.Param("subDeviceId")
	if err := h.uc.Rename(c.Request().Context(), actor, subDeviceID, req.NewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"subDeviceId": req.NewID,
	}, "Sub-device renamed successfully")
}
