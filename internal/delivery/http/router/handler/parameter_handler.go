package handler

import (
	"log/slog"
	"net/http"

	"iothub/internal/delivery/http/response"
	"iothub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type updateParameterRequest struct {
	Value string `json:"value"`
}

// ParameterHandler exposes device parameter writes on the REST surface.
// The write goes through the same use case as the realtime event, so the
// device's recipients are notified either way.
type ParameterHandler struct {
	uc     usecase.ParameterUsecase
	logger *slog.Logger
}

// NewParameterHandler is the constructor for ParameterHandler, injected by Fx.
func NewParameterHandler(uc usecase.ParameterUsecase, logger *slog.Logger) *ParameterHandler {
	return &ParameterHandler{uc: uc, logger: logger}
}

// Update persists one parameter value and fans the change out to the
// device's live connections.
func (h *ParameterHandler) Update(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return missingIdentity(c)
	}

	var req updateParameterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid parameter input")
	}

	deviceID := c.Param("deviceId")
	name := c.Param("name")
	if err := h.uc.Update(c.Request().Context(), actor, deviceID, name, req.Value); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"deviceId":  deviceID,
		"parameter": name,
		"value":     req.Value,
	}, "Parameter updated successfully")
}
