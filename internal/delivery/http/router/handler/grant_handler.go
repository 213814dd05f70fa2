package handler

import (
	"log/slog"
	"net/http"

	"iothub/internal/delivery/http/response"
	"iothub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createGrantRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// GrantHandler holds dependencies for device sharing handlers.
type GrantHandler struct {
	uc     usecase.GrantUsecase
	logger *slog.Logger
}

// NewGrantHandler is the constructor for GrantHandler, injected by Fx.
func NewGrantHandler(uc usecase.GrantUsecase, logger *slog.Logger) *GrantHandler {
	return &GrantHandler{uc: uc, logger: logger}
}

// Create shares a device with another user. Owner only.
func (h *GrantHandler) Create(c echo.Context) error {
	email, ok := currentUserEmail(c)
	if !ok {
		return missingIdentity(c)
	}

	var req createGrantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grant input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	grant, err := h.uc.Grant(c.Request().Context(), email, c.Param("deviceId"), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, grant, "Access granted successfully")
}

// List retrieves the active grants of a device. Owner only.
func (h *GrantHandler) List(c echo.Context) error {
	email, ok := currentUserEmail(c)
	if !ok {
		return missingIdentity(c)
	}

	grants, err := h.uc.List(c.Request().Context(), email, c.Param("deviceId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grants, "Grants retrieved successfully")
}

// Delete withdraws a grantee's access. Idempotent.
func (h *GrantHandler) Delete(c echo.Context) error {
	email, ok := currentUserEmail(c)
	if !ok {
		return missingIdentity(c)
	}

	if err := h.uc.Revoke(c.Request().Context(), email, c.Param("deviceId"), c.Param("email")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Access revoked successfully")
}
