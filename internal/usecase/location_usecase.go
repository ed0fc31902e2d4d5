package usecase

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
)

// LocationImageInput links an uploaded file to a location, with an optional
// caption.
type LocationImageInput struct {
	Image       string
	Name        *string
	Description *string
}

// CreateLocationInput defines the data required to create a location. Images
// may be attached inline at creation time.
type CreateLocationInput struct {
	Name        string
	Description *string
	WorldID     uuid.UUID
	CoordX      float64
	CoordY      float64
	Images      []LocationImageInput
}

// UpdateLocationInput carries a partial update of a location. Nil fields are
// left unchanged.
type UpdateLocationInput struct {
	Name        *string
	Description *string
	WorldID     *uuid.UUID
	CoordX      *float64
	CoordY      *float64
	CreatorID   *uuid.UUID
}

// LocationUsecase defines the interface for location-related business
// operations, including the image attachments of a location.
type LocationUsecase interface {
	List(ctx context.Context, params repository.ListParams) ([]*entity.Location, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	Create(ctx context.Context, creator *entity.User, input CreateLocationInput) (*entity.Location, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, input UpdateLocationInput) (*entity.Location, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error

	ListImages(ctx context.Context, locationID uuid.UUID) ([]*entity.LocationImage, error)

	// AttachImage links an uploaded file to a location. Attaching the same
	// pair twice is a no-op.
	AttachImage(ctx context.Context, locationID uuid.UUID, input LocationImageInput) (*entity.LocationImage, error)

	// DetachImage removes the link between a file and a location.
	DetachImage(ctx context.Context, locationID uuid.UUID, image string) error
}
