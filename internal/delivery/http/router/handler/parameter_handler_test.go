package handler

import (
	"net/http"
	"testing"

	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	mockUC "iothub/internal/mocks/usecase"
	"iothub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterHandler_Update_BuildsUserActor(t *testing.T) {
	mockUsecase := mockUC.NewMockParameterUsecase(t)
	handler := NewParameterHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPut, "/devices/pump-1/parameters/threshold",
		`{"value":"42"}`)
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("deviceId", "name")
	c.SetParamValues("pump-1", "threshold")

	expectedActor := usecase.Actor{
		Kind:     entity.ActorKindUser,
		Identity: "alice@example.com",
	}
	mockUsecase.EXPECT().
		Update(c.Request().Context(), expectedActor, "pump-1", "threshold", "42").
		Return(nil)

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "threshold")
}

func TestParameterHandler_Update_UsecaseErrorPropagates(t *testing.T) {
	mockUsecase := mockUC.NewMockParameterUsecase(t)
	handler := NewParameterHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodPut, "/devices/pump-9/parameters/threshold",
		`{"value":"42"}`)
	asUser(c, uuid.New(), "mallory@example.com")
	c.SetParamNames("deviceId", "name")
	c.SetParamValues("pump-9", "threshold")

	mockUsecase.EXPECT().
		Update(c.Request().Context(), usecase.Actor{
			Kind:     entity.ActorKindUser,
			Identity: "mallory@example.com",
		}, "pump-9", "threshold", "42").
		Return(domainerrors.ErrDeviceOwnershipViolation)

	err := handler.Update(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestParameterHandler_Update_MissingIdentityRejected(t *testing.T) {
	mockUsecase := mockUC.NewMockParameterUsecase(t)
	handler := NewParameterHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPut, "/devices/pump-1/parameters/threshold",
		`{"value":"42"}`)
	c.SetParamNames("deviceId", "name")
	c.SetParamValues("pump-1", "threshold")

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
