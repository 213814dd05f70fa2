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

func TestDeviceHandler_Create_Success(t *testing.T) {
	mockUsecase := mockUC.NewMockDeviceUsecase(t)
	handler := NewDeviceHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPost, "/devices",
		`{"deviceId":"pump-1","description":"basement pump"}`)
	asUser(c, uuid.New(), "alice@example.com")

	mockUsecase.EXPECT().
		Create(c.Request().Context(), &usecase.CreateDeviceInput{
			DeviceID:    "pump-1",
			Description: "basement pump",
			OwnerEmail:  "alice@example.com",
		}).
		Return(&usecase.CreateDeviceOutput{
			Device: &entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"},
			Token:  "device-token",
		}, nil)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "device-token")
}

func TestDeviceHandler_Create_MissingDeviceIDRejected(t *testing.T) {
	mockUsecase := mockUC.NewMockDeviceUsecase(t)
	handler := NewDeviceHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodPost, "/devices", `{"description":"no id"}`)
	asUser(c, uuid.New(), "alice@example.com")

	err := handler.Create(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceHandler_List_Success(t *testing.T) {
	mockUsecase := mockUC.NewMockDeviceUsecase(t)
	handler := NewDeviceHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodGet, "/devices", "")
	asUser(c, uuid.New(), "alice@example.com")

	mockUsecase.EXPECT().
		List(c.Request().Context(), "alice@example.com").
		Return([]*entity.Device{{DeviceID: "pump-1"}, {DeviceID: "pump-2"}}, nil)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pump-1")
	assert.Contains(t, rec.Body.String(), "pump-2")
}

func TestDeviceHandler_Get_PassesPathParam(t *testing.T) {
	mockUsecase := mockUC.NewMockDeviceUsecase(t)
	handler := NewDeviceHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodGet, "/devices/pump-1", "")
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("deviceId")
	c.SetParamValues("pump-1")

	mockUsecase.EXPECT().
		Get(c.Request().Context(), "alice@example.com", "pump-1").
		Return(&entity.Device{DeviceID: "pump-1"}, nil)

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_Get_UsecaseErrorPropagates(t *testing.T) {
	mockUsecase := mockUC.NewMockDeviceUsecase(t)
	handler := NewDeviceHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodGet, "/devices/pump-9", "")
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("deviceId")
	c.SetParamValues("pump-9")

	mockUsecase.EXPECT().
		Get(c.Request().Context(), "alice@example.com", "pump-9").
		Return(nil, domainerrors.ErrDeviceOwnershipViolation)

	err := handler.Get(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestDeviceHandler_Update_PartialBody(t *testing.T) {
	mockUsecase := mockUC.NewMockDeviceUsecase(t)
	handler := NewDeviceHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPut, "/devices/pump-1",
		`{"description":"moved upstairs"}`)
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("deviceId")
	c.SetParamValues("pump-1")

	description := "moved upstairs"
	mockUsecase.EXPECT().
		Update(c.Request().Context(), "alice@example.com", "pump-1", &usecase.UpdateDeviceInput{
			Description: &description,
		}).
		Return(&entity.Device{DeviceID: "pump-1", Description: description}, nil)

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "moved upstairs")
}

func TestDeviceHandler_Delete_Success(t *testing.T) {
	mockUsecase := mockUC.NewMockDeviceUsecase(t)
	handler := NewDeviceHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodDelete, "/devices/pump-1", "")
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("deviceId")
	c.SetParamValues("pump-1")

	mockUsecase.EXPECT().
		Delete(c.Request().Context(), "alice@example.com", "pump-1").
		Return(nil)

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_Delete_MissingIdentityRejected(t *testing.T) {
	mockUsecase := mockUC.NewMockDeviceUsecase(t)
	handler := NewDeviceHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodDelete, "/devices/pump-1", "")
	c.SetParamNames("deviceId")
	c.SetParamValues("pump-1")

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
