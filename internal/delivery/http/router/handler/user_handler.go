package handler

import (
	"net/http"
	"time"

	"atlas/internal/delivery/http/presenter"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc        usecase.UserUsecase
	presenter *presenter.Presenter
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, p *presenter.Presenter) *UserHandler {
	return &UserHandler{uc: uc, presenter: p}
}

// UpdateUserRequest is the JSON body of the self-update endpoint. Absent
// fields leave the current value untouched.
type UpdateUserRequest struct {
	Username       *string `json:"username"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password" validate:"omitempty,min=8"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	AdditionalName *string `json:"additional_name"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,max=15"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	AvatarImage    *string `json:"avatar_image"`
}

// List handles the public user listing with optional search and pagination.
func (h *UserHandler) List(c echo.Context) error {
	params, err := bindListParams(c)
	if err != nil {
		return err
	}

	users, err := h.uc.List(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.Users(users))
}

// GetMe returns the authenticated caller's own account.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.presenter.User(user))
}

// GetByID returns a single user.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.User(user))
}

// UpdateMe applies a partial update to the caller's own account.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation.WithMessagef("invalid user update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.UpdateUserInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		AdditionalName: req.AdditionalName,
		PhoneNumber:    req.PhoneNumber,
		AvatarImage:    req.AvatarImage,
	}
	if req.DateOfBirth != nil {
		dateOfBirth, parseErr := time.Parse(dateLayout, *req.DateOfBirth)
		if parseErr != nil {
			return domainerrors.ErrValidation.WithMessagef("invalid date_of_birth: %s", *req.DateOfBirth)
		}
		input.DateOfBirth = &dateOfBirth
	}

	updated, err := h.uc.UpdateMe(c.Request().Context(), user, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.User(updated))
}

// Delete removes an account. Only the account owner may delete it.
func (h *UserHandler) Delete(c echo.Context) error {
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
