package handler

import (
	"iothub/internal/delivery/http/middleware"
	"iothub/internal/delivery/http/response"
	"iothub/internal/domain/entity"
	"iothub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the account id the auth middleware stored on the
// request context.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)

	return userID, ok
}

// currentUserEmail reads the account email the auth middleware stored on
// the request context.
func currentUserEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(middleware.KeyUserEmail).(string)

	return email, ok && email != ""
}

// currentActor builds the authenticated user actor for operations shared
// with the realtime surface.
func currentActor(c echo.Context) (usecase.Actor, bool) {
	email, ok := currentUserEmail(c)
	if !ok {
		return usecase.Actor{}, false
	}

	disabled, _ := c.Get(middleware.KeyUserDisabled).(bool)

	return usecase.Actor{
		Kind:     entity.ActorKindUser,
		Identity: email,
		Disabled: disabled,
	}, true
}

// missingIdentity is the shared rejection for requests that reached a
// protected handler without the middleware's context values.
func missingIdentity(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity on request context")
}
