// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	deliverycontext "atlas/internal/delivery/context"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// currentUser returns the account the auth middleware resolved. Routes using
// it are always registered behind Authenticate, so a missing user means a
// wiring mistake, reported as a 401 rather than a panic.
func currentUser(c echo.Context) (*entity.User, error) {
	user := deliverycontext.GetCurrentUser(c)
	if user == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// parseIDParam parses the ":id" path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidation.WithMessagef("invalid id: %s", c.Param("id"))
	}

	return id, nil
}

// bindListParams reads the optional search/limit/offset query parameters
// shared by the public list endpoints.
func bindListParams(c echo.Context) (repository.ListParams, error) {
	params := repository.ListParams{Search: c.QueryParam("search")}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return params, domainerrors.ErrValidation.WithMessagef("invalid limit: %s", raw)
		}
		params.Limit = &limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return params, domainerrors.ErrValidation.WithMessagef("invalid offset: %s", raw)
		}
		params.Offset = &offset
	}

	return params, nil
}
