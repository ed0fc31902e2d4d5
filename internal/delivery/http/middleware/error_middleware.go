package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	domainerrors "atlas/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error that escapes a handler as the uniform
// error payload.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() == http.StatusUnauthorized {
			// Bearer scheme challenge on every 401.
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message))

		return
	}

	// Anything else is unexpected: log the full chain, return the bare error
	// text without stack traces.
	m.logger.Error("Unhandled error",
		slog.String("error", fmt.Sprintf("%+v", err)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, err.Error())
}
