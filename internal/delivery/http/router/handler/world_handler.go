package handler

import (
	"net/http"

	"atlas/internal/delivery/http/presenter"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WorldHandler holds dependencies for world-related handlers.
type WorldHandler struct {
	uc        usecase.WorldUsecase
	presenter *presenter.Presenter
}

// NewWorldHandler is the constructor for WorldHandler, injected by Fx.
func NewWorldHandler(uc usecase.WorldUsecase, p *presenter.Presenter) *WorldHandler {
	return &WorldHandler{uc: uc, presenter: p}
}

// CreateWorldRequest is the JSON body of the world creation endpoint.
type CreateWorldRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image"`
	MapImage    string  `json:"map_image" validate:"required"`
}

// UpdateWorldRequest is the JSON body of the world patch endpoint. Absent
// fields leave the current value untouched.
type UpdateWorldRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	CoverImage  *string    `json:"cover_image"`
	MapImage    *string    `json:"map_image"`
	CreatorID   *uuid.UUID `json:"creator_id"`
}

// List handles the public world listing with optional search and pagination.
func (h *WorldHandler) List(c echo.Context) error {
	params, err := bindListParams(c)
	if err != nil {
		return err
	}

	worlds, err := h.uc.List(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.Worlds(worlds))
}

// GetByID returns a single world.
func (h *WorldHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	world, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.World(world))
}

// Create handles the world creation request.
func (h *WorldHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateWorldRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation.WithMessagef("invalid world input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	world, err := h.uc.Create(c.Request().Context(), user, usecase.CreateWorldInput{
		Name:        req.Name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		MapImage:    req.MapImage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, h.presenter.World(world))
}

// Update applies a partial update to a world.
func (h *WorldHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateWorldRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation.WithMessagef("invalid world update input")
	}

	world, err := h.uc.Update(c.Request().Context(), user, id, usecase.UpdateWorldInput{
		Name:        req.Name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		MapImage:    req.MapImage,
		CreatorID:   req.CreatorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.World(world))
}

// Delete removes a world.
func (h *WorldHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), user, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddFavourite marks a world as a favourite of the caller.
func (h *WorldHandler) AddFavourite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.AddFavourite(c.Request().Context(), user, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusCreated)
}

// RemoveFavourite unmarks a favourite of the caller.
func (h *WorldHandler) RemoveFavourite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFavourite(c.Request().Context(), user, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
