package middleware

import (
	"net/http"
	"strings"

	"iothub/internal/domain/repository"
	"iothub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyUserID       = "userID"
	KeyUserEmail    = "userEmail"
	KeyUserDisabled = "userDisabled"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the account behind
// it. Only user tokens are accepted here; device tokens authenticate on
// the websocket surface.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		if !claims.IsUser() {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "A user token is required"})
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unknown account"})
			}

			return errors.Wrap(err, "failed to resolve account from token")
		}

		// Handlers address use cases by email; the id stays available
		// for account-scoped operations.
		c.Set(KeyUserID, user.ID)
		c.Set(KeyUserEmail, user.Email)
		c.Set(KeyUserDisabled, user.IsDisabled)

		return next(c)
	}
}
