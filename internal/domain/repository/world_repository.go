package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWorldNotFound is a domain-specific error returned when a world is not found.
var ErrWorldNotFound = errors.New("world not found")

// WorldRepository defines the standard operations for world persistence.
type WorldRepository interface {
	// FindByID retrieves a single world by ID, with its creator preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.World, error)

	// List returns worlds matching the given search/pagination parameters.
	// The search term is matched as a substring of name and description.
	List(ctx context.Context, params ListParams) ([]*entity.World, error)

	// Create persists a new world entity to the storage.
	Create(ctx context.Context, world *entity.World) error

	// Update modifies an existing world entity in the storage.
	Update(ctx context.Context, world *entity.World) error

	// Delete removes a world row. Its locations are removed by FK cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddFavourite records that a user favourited a world. Adding the same
	// favourite twice is a silent no-op.
	AddFavourite(ctx context.Context, worldID, userID uuid.UUID) error

	// RemoveFavourite removes a favourite mark. Removing an absent favourite
	// is a silent no-op.
	RemoveFavourite(ctx context.Context, worldID, userID uuid.UUID) error
}
