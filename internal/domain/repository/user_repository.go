package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByLogin retrieves a single user whose username or email matches login.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// List returns users matching the given search/pagination parameters.
	// The search term is matched as a substring of username, first and last name.
	List(ctx context.Context, params ListParams) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user row. Dependent rows follow their FK actions
	// (worlds and locations are orphaned, favourites are removed).
	Delete(ctx context.Context, id uuid.UUID) error
}
