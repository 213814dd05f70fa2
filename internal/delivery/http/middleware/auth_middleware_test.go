package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/domain/service"
	mockRepo "iothub/internal/mocks/repository"
	mockSvc "iothub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixture struct {
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
	middleware *AuthMiddleware
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixture {
	fixture := authMiddlewareFixture{
		tokenSvc: mockSvc.NewMockTokenService(t),
		userRepo: mockRepo.NewMockUserRepository(t),
	}
	fixture.middleware = NewAuthMiddleware(fixture.tokenSvc, fixture.userRepo)

	return fixture
}

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/devices", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_SetsIdentityOnContext(t *testing.T) {
	fixture := createTestAuthMiddleware(t)
	userID := uuid.New()

	c, _ := newAuthTestContext(t, "Bearer good-token")

	fixture.tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: userID}, nil)
	fixture.userRepo.EXPECT().
		FindByID(c.Request().Context(), userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)

	var nextCalled bool
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, fixture.middleware.Authenticate(next)(c))
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get(KeyUserID))
	assert.Equal(t, "alice@example.com", c.Get(KeyUserEmail))
	assert.Equal(t, false, c.Get(KeyUserDisabled))
}

func TestAuthMiddleware_Authenticate_MissingHeaderRejected(t *testing.T) {
	fixture := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext(t, "")

	next := func(c echo.Context) error {
		t.Fatal("next handler should not run")

		return nil
	}

	require.NoError(t, fixture.middleware.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NonBearerRejected(t *testing.T) {
	fixture := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	require.NoError(t, fixture.middleware.Authenticate(echo.NotFoundHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidTokenRejected(t *testing.T) {
	fixture := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext(t, "Bearer bad-token")

	fixture.tokenSvc.EXPECT().
		ValidateToken("bad-token").
		Return(nil, assert.AnError)

	require.NoError(t, fixture.middleware.Authenticate(echo.NotFoundHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_DeviceTokenRejected(t *testing.T) {
	fixture := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext(t, "Bearer device-token")

	fixture.tokenSvc.EXPECT().
		ValidateToken("device-token").
		Return(&service.Claims{DeviceID: "pump-1"}, nil)

	require.NoError(t, fixture.middleware.Authenticate(echo.NotFoundHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_UnknownAccountRejected(t *testing.T) {
	fixture := createTestAuthMiddleware(t)
	userID := uuid.New()

	c, rec := newAuthTestContext(t, "Bearer orphan-token")

	fixture.tokenSvc.EXPECT().
		ValidateToken("orphan-token").
		Return(&service.Claims{UserID: userID}, nil)
	fixture.userRepo.EXPECT().
		FindByID(c.Request().Context(), userID).
		Return(nil, repository.ErrUserNotFound)

	require.NoError(t, fixture.middleware.Authenticate(echo.NotFoundHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
