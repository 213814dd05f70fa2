package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"iothub/internal/delivery/http/middleware"
	"iothub/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context with the validator installed,
// the way the server constructor configures it.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// asUser stores the context values the auth middleware would have set.
func asUser(c echo.Context, userID uuid.UUID, email string) {
	c.Set(middleware.KeyUserID, userID)
	c.Set(middleware.KeyUserEmail, email)
	c.Set(middleware.KeyUserDisabled, false)
}
