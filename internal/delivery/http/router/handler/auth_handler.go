package handler

import (
	"net/http"
	"time"

	"atlas/internal/delivery/http/presenter"
	"atlas/internal/delivery/http/response"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// AuthHandler holds dependencies for the registration and login endpoints.
type AuthHandler struct {
	uc        usecase.UserUsecase
	presenter *presenter.Presenter
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, p *presenter.Presenter) *AuthHandler {
	return &AuthHandler{uc: uc, presenter: p}
}

// RegisterRequest is the JSON body of the registration endpoint.
type RegisterRequest struct {
	Username       string  `json:"username" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8"`
	FirstName      string  `json:"first_name" validate:"required"`
	LastName       string  `json:"last_name" validate:"required"`
	AdditionalName *string `json:"additional_name"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,max=15"`
	DateOfBirth    string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	AvatarImage    *string `json:"avatar_image"`
}

// LoginRequest is the form-encoded body of the login endpoint. The username
// field also accepts an email address.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation.WithMessagef("invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dateOfBirth, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return domainerrors.ErrValidation.WithMessagef("invalid date_of_birth: %s", req.DateOfBirth)
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		AdditionalName: req.AdditionalName,
		PhoneNumber:    req.PhoneNumber,
		DateOfBirth:    dateOfBirth,
		AvatarImage:    req.AvatarImage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, h.presenter.User(user))
}

// Login handles the login request and returns the bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation.WithMessagef("invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Login:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.TokenBody{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}
