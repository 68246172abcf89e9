package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "passport/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(err error) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec := handleError(errors.Wrap(domainerrors.ErrEmailTaken, "create account failed"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
	assert.Contains(t, rec.Body.String(), "an account with this email already exists")
}

func TestErrorMiddleware_UnauthorizedAppError(t *testing.T) {
	rec := handleError(domainerrors.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestErrorMiddleware_ServerFaultHidesDetail(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrCredentialCorrupted, "stored hash for jane@example.com is unreadable")

	rec := handleError(err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "jane@example.com")
	assert.NotContains(t, rec.Body.String(), "unreadable")
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestErrorMiddleware_DatabaseErrorHidesDriverText(t *testing.T) {
	err := domainerrors.NewDatabaseExecuteError(
		errors.New(`pq: relation "accounts" does not exist`),
		"insert failed",
	)

	rec := handleError(err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := handleError(echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_UnknownErrorIsGeneric(t *testing.T) {
	rec := handleError(errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
