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

func TestSubDeviceHandler_Rename_BuildsUserActor(t *testing.T) {
	mockUsecase := mockUC.NewMockSubDeviceUsecase(t)
	handler := NewSubDeviceHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPut, "/sub-devices/sensor-1",
		`{"newId":"sensor-2"}`)
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("subDeviceId")
	c.SetParamValues("sensor-1")

	expectedActor := usecase.Actor{
		Kind:     entity.ActorKindUser,
		Identity: "alice@example.com",
	}
	mockUsecase.EXPECT().
		Rename(c.Request().Context(), expectedActor, "sensor-1", "sensor-2").
		Return(nil)

	require.NoError(t, handler.Rename(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sensor-2")
}

func TestSubDeviceHandler_Rename_MissingNewIDRejected(t *testing.T) {
	mockUsecase := mockUC.NewMockSubDeviceUsecase(t)
	handler := NewSubDeviceHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodPut, "/sub-devices/sensor-1", `{}`)
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("subDeviceId")
	c.SetParamValues("sensor-1")

	err := handler.Rename(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSubDeviceHandler_Rename_UsecaseErrorPropagates(t *testing.T) {
	mockUsecase := mockUC.NewMockSubDeviceUsecase(t)
	handler := NewSubDeviceHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodPut, "/sub-devices/sensor-1",
		`{"newId":"sensor-2"}`)
	asUser(c, uuid.New(), "bob@example.com")
	c.SetParamNames("subDeviceId")
	c.SetParamValues("sensor-1")

	mockUsecase.EXPECT().
		Rename(c.Request().Context(), usecase.Actor{
			Kind:     entity.ActorKindUser,
			Identity: "bob@example.com",
		}, "sensor-1", "sensor-2").
		Return(domainerrors.ErrDeviceOwnershipViolation)

	err := handler.Rename(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestSubDeviceHandler_Rename_MissingIdentityRejected(t *testing.T) {
	mockUsecase := mockUC.NewMockSubDeviceUsecase(t)
	handler := NewSubDeviceHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPut, "/sub-devices/sensor-1",
		`{"newId":"sensor-2"}`)
	c.SetParamNames("subDeviceId")
	c.SetParamValues("sensor-1")

	require.NoError(t, handler.Rename(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
