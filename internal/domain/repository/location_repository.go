package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLocationNotFound is a domain-specific error returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the standard operations for location persistence,
// including the image attachments that belong to a location.
type LocationRepository interface {
	// FindByID retrieves a single location by ID, with its creator preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// List returns locations matching the given search/pagination parameters.
	// The search term is matched as a substring of name and description.
	List(ctx context.Context, params ListParams) ([]*entity.Location, error)

	// Create persists a new location entity to the storage.
	Create(ctx context.Context, location *entity.Location) error

	// Update modifies an existing location entity in the storage.
	Update(ctx context.Context, location *entity.Location) error

	// Delete removes a location row. Its images are removed by FK cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListImages returns the image attachments of a location.
	ListImages(ctx context.Context, locationID uuid.UUID) ([]*entity.LocationImage, error)

	// AttachImage links an uploaded file to a location. Attaching the same
	// (image, location) pair twice is a silent no-op.
	AttachImage(ctx context.Context, image *entity.LocationImage) error

	// DetachImage removes the link between a file and a location.
	DetachImage(ctx context.Context, locationID uuid.UUID, image string) error
}
