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

// LocationHandler holds dependencies for location-related handlers.
type LocationHandler struct {
	uc        usecase.LocationUsecase
	presenter *presenter.Presenter
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, p *presenter.Presenter) *LocationHandler {
	return &LocationHandler{uc: uc, presenter: p}
}

// LocationImageRequest references an uploaded file with an optional caption.
type LocationImageRequest struct {
	Image       string  `json:"image" validate:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateLocationRequest is the JSON body of the location creation endpoint.
type CreateLocationRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Description *string                `json:"description"`
	WorldID     uuid.UUID              `json:"world_id" validate:"required"`
	CoordX      float64                `json:"coord_x"`
	CoordY      float64                `json:"coord_y"`
	Images      []LocationImageRequest `json:"images" validate:"dive"`
}

// UpdateLocationRequest is the JSON body of the location patch endpoint.
// Absent fields leave the current value untouched.
type UpdateLocationRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	WorldID     *uuid.UUID `json:"world_id"`
	CoordX      *float64   `json:"coord_x"`
	CoordY      *float64   `json:"coord_y"`
	CreatorID   *uuid.UUID `json:"creator_id"`
}

// List handles the public location listing with optional search and pagination.
func (h *LocationHandler) List(c echo.Context) error {
	params, err := bindListParams(c)
	if err != nil {
		return err
	}

	locations, err := h.uc.List(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.Locations(locations))
}

// GetByID returns a single location.
func (h *LocationHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	location, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.Location(location))
}

// Create handles the location creation request, optionally attaching inline
// images after the location itself is stored.
func (h *LocationHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation.WithMessagef("invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	images := make([]usecase.LocationImageInput, 0, len(req.Images))
	for _, image := range req.Images {
		images = append(images, usecase.LocationImageInput{
			Image:       image.Image,
			Name:        image.Name,
			Description: image.Description,
		})
	}

	location, err := h.uc.Create(c.Request().Context(), user, usecase.CreateLocationInput{
		Name:        req.Name,
		Description: req.Description,
		WorldID:     req.WorldID,
		CoordX:      req.CoordX,
		CoordY:      req.CoordY,
		Images:      images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, h.presenter.Location(location))
}

// Update applies a partial update to a location.
func (h *LocationHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation.WithMessagef("invalid location update input")
	}

	location, err := h.uc.Update(c.Request().Context(), user, id, usecase.UpdateLocationInput{
		Name:        req.Name,
		Description: req.Description,
		WorldID:     req.WorldID,
		CoordX:      req.CoordX,
		CoordY:      req.CoordY,
		CreatorID:   req.CreatorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.Location(location))
}

// Delete removes a location.
func (h *LocationHandler) Delete(c echo.Context) error {
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

// ListImages returns the image attachments of a location.
func (h *LocationHandler) ListImages(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	images, err := h.uc.ListImages(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.LocationImages(images))
}

// AttachImage links an uploaded file to a location.
func (h *LocationHandler) AttachImage(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req LocationImageRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation.WithMessagef("invalid image input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := h.uc.AttachImage(c.Request().Context(), id, usecase.LocationImageInput{
		Image:       req.Image,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, h.presenter.LocationImage(image))
}

// DetachImage removes the link between a file and a location. The filename
// comes from the "image" query parameter.
func (h *LocationHandler) DetachImage(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	imageName := c.QueryParam("image")
	if imageName == "" {
		return domainerrors.ErrValidation.WithMessagef("image query parameter is required")
	}

	if err := h.uc.DetachImage(c.Request().Context(), id, imageName); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
