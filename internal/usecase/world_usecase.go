package usecase

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateWorldInput defines the data required to create a world.
type CreateWorldInput struct {
	Name        string
	Description *string
	CoverImage  *string
	MapImage    string
}

// UpdateWorldInput carries a partial update of a world. Nil fields are left
// unchanged. CreatorID may hand the world over to another existing user.
type UpdateWorldInput struct {
	Name        *string
	Description *string
	CoverImage  *string
	MapImage    *string
	CreatorID   *uuid.UUID
}

// WorldUsecase defines the interface for world-related business operations.
type WorldUsecase interface {
	List(ctx context.Context, params repository.ListParams) ([]*entity.World, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.World, error)
	Create(ctx context.Context, creator *entity.User, input CreateWorldInput) (*entity.World, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, input UpdateWorldInput) (*entity.World, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error

	// AddFavourite marks a world as a favourite of the actor. Repeating the
	// call is a no-op.
	AddFavourite(ctx context.Context, actor *entity.User, worldID uuid.UUID) error

	// RemoveFavourite unmarks a favourite. Removing an absent mark is a no-op.
	RemoveFavourite(ctx context.Context, actor *entity.User, worldID uuid.UUID) error
}
