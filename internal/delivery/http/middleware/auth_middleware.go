package middleware

import (
	"strings"

	deliverycontext "atlas/internal/delivery/context"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware validates bearer tokens and resolves them to user accounts.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate requires a valid "Authorization: Bearer <token>" header, loads
// the account the token belongs to and stores it on the context. A missing or
// malformed header, a bad token and a deleted account all yield the same 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidCredentials
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidCredentials
		}

		userID, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidCredentials
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to load authenticated user")
		}

		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}
