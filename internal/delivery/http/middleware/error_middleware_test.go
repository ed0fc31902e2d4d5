package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "atlas/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/worlds", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrNotFound.WithMessagef("world not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, float64(http.StatusNotFound), body["status"])
	assert.Equal(t, "world not found", body["error"])
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	wrapped := errors.Wrap(domainerrors.ErrOrphanedResource, "failed to execute world update transaction")
	m.HandleHTTPError(wrapped, c)

	assert.Equal(t, http.StatusFailedDependency, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "the resource does not have a creator, action can not be done", body["error"])
}

func TestErrorMiddleware_UnauthorizedSetsChallenge(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrInvalidCredentials, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "invalid credentials", body["error"])
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Method Not Allowed", body["error"])
}

func TestErrorMiddleware_UnexpectedError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, float64(http.StatusInternalServerError), body["status"])
	assert.Equal(t, "connection refused", body["error"])
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	require.NoError(t, c.NoContent(http.StatusNoContent))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
