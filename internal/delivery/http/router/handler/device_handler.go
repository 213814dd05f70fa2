package handler

import (
	"log/slog"
	"net/http"

	"iothub/internal/delivery/http/response"
	"iothub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createDeviceRequest struct {
	DeviceID    string `json:"deviceId" validate:"required"`
	Description string `json:"description"`
}

type updateDeviceRequest struct {
	Description *string `json:"description"`
	IsDisabled  *bool   `json:"isDisabled"`
}

// DeviceHandler holds dependencies for device lifecycle handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{uc: uc, logger: logger}
}

// Create provisions a device owned by the caller and returns its
// connection token. The token is shown exactly once.
func (h *DeviceHandler) Create(c echo.Context) error {
	email, ok := currentUserEmail(c)
	if !ok {
		return missingIdentity(c)
	}

	var req createDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), &usecase.CreateDeviceInput{
		DeviceID:    req.DeviceID,
		Description: req.Description,
		OwnerEmail:  email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Device registered successfully")
}

// List retrieves the devices owned by the caller.
func (h *DeviceHandler) List(c echo.Context) error {
	email, ok := currentUserEmail(c)
	if !ok {
		return missingIdentity(c)
	}

	devices, err := h.uc.List(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

// Get retrieves one device the caller owns or was granted access to.
func (h *DeviceHandler) Get(c echo.Context) error {
	email, ok := currentUserEmail(c)
	if !ok {
		return missingIdentity(c)
	}

	device, err := h.uc.Get(c.Request().Context(), email, c.Param("deviceId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Device retrieved successfully")
}

// Update persists the mutable device fields. Absent fields stay
// unchanged.
func (h *DeviceHandler) Update(c echo.Context) error {
	email, ok := currentUserEmail(c)
	if !ok {
		return missingIdentity(c)
	}

	var req updateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	device, err := h.uc.Update(c.Request().Context(), email, c.Param("deviceId"), &usecase.UpdateDeviceInput{
		Description: req.Description,
		IsDisabled:  req.IsDisabled,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Device updated successfully")
}

// Delete removes the device and everything bound to it.
func (h *DeviceHandler) Delete(c echo.Context) error {
	email, ok := currentUserEmail(c)
	if !ok {
		return missingIdentity(c)
	}

	if err := h.uc.Delete(c.Request().Context(), email, c.Param("deviceId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deleted successfully")
}
