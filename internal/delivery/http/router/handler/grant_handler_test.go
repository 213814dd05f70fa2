package handler

import (
	"net/http"
	"testing"

	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	mockUC "iothub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantHandler_Create_Success(t *testing.T) {
	mockUsecase := mockUC.NewMockGrantUsecase(t)
	handler := NewGrantHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPost, "/devices/pump-1/grants",
		`{"email":"bob@example.com"}`)
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("deviceId")
	c.SetParamValues("pump-1")

	mockUsecase.EXPECT().
		Grant(c.Request().Context(), "alice@example.com", "pump-1", "bob@example.com").
		Return(&entity.AccessGrant{
			DeviceID:     "pump-1",
			GranteeEmail: "bob@example.com",
			GrantorEmail: "alice@example.com",
		}, nil)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "bob@example.com")
}

func TestGrantHandler_Create_InvalidEmailRejected(t *testing.T) {
	mockUsecase := mockUC.NewMockGrantUsecase(t)
	handler := NewGrantHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodPost, "/devices/pump-1/grants",
		`{"email":"not-an-email"}`)
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("deviceId")
	c.SetParamValues("pump-1")

	err := handler.Create(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGrantHandler_List_Success(t *testing.T) {
	mockUsecase := mockUC.NewMockGrantUsecase(t)
	handler := NewGrantHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodGet, "/devices/pump-1/grants", "")
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("deviceId")
	c.SetParamValues("pump-1")

	mockUsecase.EXPECT().
		List(c.Request().Context(), "alice@example.com", "pump-1").
		Return([]*entity.AccessGrant{{DeviceID: "pump-1", GranteeEmail: "bob@example.com"}}, nil)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bob@example.com")
}

func TestGrantHandler_Delete_RevokesByPathEmail(t *testing.T) {
	mockUsecase := mockUC.NewMockGrantUsecase(t)
	handler := NewGrantHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodDelete, "/devices/pump-1/grants/bob@example.com", "")
	asUser(c, uuid.New(), "alice@example.com")
	c.SetParamNames("deviceId", "email")
	c.SetParamValues("pump-1", "bob@example.com")

	mockUsecase.EXPECT().
		Revoke(c.Request().Context(), "alice@example.com", "pump-1", "bob@example.com").
		Return(nil)

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGrantHandler_Delete_NonOwnerErrorPropagates(t *testing.T) {
	mockUsecase := mockUC.NewMockGrantUsecase(t)
	handler := NewGrantHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodDelete, "/devices/pump-1/grants/bob@example.com", "")
	asUser(c, uuid.New(), "mallory@example.com")
	c.SetParamNames("deviceId", "email")
	c.SetParamValues("pump-1", "bob@example.com")

	mockUsecase.EXPECT().
		Revoke(c.Request().Context(), "mallory@example.com", "pump-1", "bob@example.com").
		Return(domainerrors.ErrDeviceOwnershipViolation)

	err := handler.Delete(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}
