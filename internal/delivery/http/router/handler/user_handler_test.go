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

func TestUserHandler_Register_Success(t *testing.T) {
	mockUsecase := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"hunter2hunter2"}`)

	mockUsecase.EXPECT().
		Register(c.Request().Context(), &usecase.RegisterUserInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "hunter2hunter2",
		}).
		Return(&usecase.RegisterOutput{User: &entity.User{Email: "alice@example.com"}}, nil)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
}

func TestUserHandler_Register_InvalidEmailRejected(t *testing.T) {
	mockUsecase := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"not-an-email","password":"hunter2hunter2"}`)

	err := handler.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserHandler_Register_ShortPasswordRejected(t *testing.T) {
	mockUsecase := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"short"}`)

	err := handler.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserHandler_Login_Success(t *testing.T) {
	mockUsecase := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"hunter2hunter2"}`)

	mockUsecase.EXPECT().
		Login(c.Request().Context(), &usecase.LoginInput{
			Email:    "alice@example.com",
			Password: "hunter2hunter2",
		}).
		Return(&usecase.LoginOutput{AccessToken: "signed-token"}, nil)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestUserHandler_Login_UsecaseErrorPropagates(t *testing.T) {
	mockUsecase := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong-password"}`)

	mockUsecase.EXPECT().
		Login(c.Request().Context(), &usecase.LoginInput{
			Email:    "alice@example.com",
			Password: "wrong-password",
		}).
		Return(nil, domainerrors.ErrInvalidCredential)

	err := handler.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
}

func TestUserHandler_ChangeEmail_Success(t *testing.T) {
	mockUsecase := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUsecase, newTestLogger())

	userID := uuid.New()
	c, rec := newTestContext(t, http.MethodPut, "/users/email",
		`{"newEmail":"new@example.com"}`)
	asUser(c, userID, "old@example.com")

	mockUsecase.EXPECT().
		ChangeEmail(c.Request().Context(), userID, "new@example.com").
		Return(nil)

	require.NoError(t, handler.ChangeEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new@example.com")
}

func TestUserHandler_ChangeEmail_MissingIdentityRejected(t *testing.T) {
	mockUsecase := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPut, "/users/email",
		`{"newEmail":"new@example.com"}`)

	require.NoError(t, handler.ChangeEmail(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_Delete_Success(t *testing.T) {
	mockUsecase := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUsecase, newTestLogger())

	userID := uuid.New()
	c, rec := newTestContext(t, http.MethodDelete, "/users", "")
	asUser(c, userID, "alice@example.com")

	mockUsecase.EXPECT().
		Delete(c.Request().Context(), userID).
		Return(nil)

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_RegisterPushToken_Success(t *testing.T) {
	mockUsecase := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUsecase, newTestLogger())

	c, rec := newTestContext(t, http.MethodPost, "/users/push-tokens",
		`{"token":"fcm-token-1","platform":"android"}`)
	asUser(c, uuid.New(), "alice@example.com")

	mockUsecase.EXPECT().
		RegisterPushToken(c.Request().Context(), "alice@example.com", "fcm-token-1", "android").
		Return(nil)

	require.NoError(t, handler.RegisterPushToken(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserHandler_RegisterPushToken_UnknownPlatformRejected(t *testing.T) {
	mockUsecase := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUsecase, newTestLogger())

	c, _ := newTestContext(t, http.MethodPost, "/users/push-tokens",
		`{"token":"fcm-token-1","platform":"blackberry"}`)
	asUser(c, uuid.New(), "alice@example.com")

	err := handler.RegisterPushToken(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestHealthCheck_ReportsOK(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
