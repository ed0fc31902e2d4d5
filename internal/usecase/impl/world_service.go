package impl

import (
	"context"
	"log/slog"

	deliverycontext "atlas/internal/delivery/context"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// worldService implements the WorldUsecase interface.
type worldService struct {
	txManager repository.TransactionManager
	worldRepo repository.WorldRepository
	logger    *slog.Logger
}

// WorldServiceParams holds dependencies for worldService, injected by Fx.
type WorldServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	WorldRepo repository.WorldRepository
	Logger    *slog.Logger
}

// NewWorldService is the constructor for worldService.
func NewWorldService(params WorldServiceParams) usecase.WorldUsecase {
	return &worldService{
		txManager: params.TxManager,
		worldRepo: params.WorldRepo,
		logger:    params.Logger,
	}
}

func (srv *worldService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns worlds matching the search/pagination parameters.
func (srv *worldService) List(ctx context.Context, params repository.ListParams) ([]*entity.World, error) {
	worlds, err := srv.worldRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list worlds")
	}

	return worlds, nil
}

// GetByID returns a single world.
func (srv *worldService) GetByID(ctx context.Context, id uuid.UUID) (*entity.World, error) {
	world, err := srv.worldRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorldNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessagef("world not found")
		}

		return nil, errors.Wrap(err, "failed to find world by id")
	}

	return world, nil
}

// Create persists a new world owned by the caller.
func (srv *worldService) Create(ctx context.Context, creator *entity.User, input usecase.CreateWorldInput) (*entity.World, error) {
	creatorID := creator.ID
	newWorld := &entity.World{
		Name:        input.Name,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		MapImage:    input.MapImage,
		CreatorID:   &creatorID,
		Creator:     creator,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.WorldRepo().Create(ctx, newWorld)
	})
	if err != nil {
		srv.log(ctx).Warn("World create failed", slog.Any("creatorID", creator.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute world create transaction")
	}

	srv.log(ctx).Debug("World created", slog.Any("worldID", newWorld.ID))

	return newWorld, nil
}

// Update applies a partial update to a world after passing the mutation gates:
// the world must exist, must still have a creator and the caller must be that
// creator. Handing the world over to another user requires that user to exist.
func (srv *worldService) Update(ctx context.Context, actor *entity.User, id uuid.UUID, input usecase.UpdateWorldInput) (*entity.World, error) {
	var updatedWorld *entity.World

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		worldRepo := repoFactory.WorldRepo()

		world, err := loadGatedWorld(ctx, worldRepo, actor, id)
		if err != nil {
			return err
		}

		if input.CreatorID != nil && *input.CreatorID != *world.CreatorID {
			newCreator, findErr := repoFactory.UserRepo().FindByID(ctx, *input.CreatorID)
			if findErr != nil {
				if errors.Is(findErr, repository.ErrUserNotFound) {
					return domainerrors.ErrValidation.WithMessagef("new creator does not exist")
				}

				return errors.Wrap(findErr, "failed to load new creator")
			}
			world.CreatorID = input.CreatorID
			world.Creator = newCreator
		}
		applyWorldUpdate(world, input)

		if err := worldRepo.Update(ctx, world); err != nil {
			return errors.Wrap(err, "failed to update world")
		}
		updatedWorld = world

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("World update failed", slog.Any("worldID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("World updated", slog.Any("worldID", id))

	return updatedWorld, nil
}

// Delete removes a world after the same gates as Update. Locations and
// favourites disappear with it by cascade.
func (srv *worldService) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		worldRepo := repoFactory.WorldRepo()

		world, err := loadGatedWorld(ctx, worldRepo, actor, id)
		if err != nil {
			return err
		}

		return worldRepo.Delete(ctx, world.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("World delete failed", slog.Any("worldID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("World deleted", slog.Any("worldID", id))

	return nil
}

// AddFavourite marks a world as a favourite of the actor.
func (srv *worldService) AddFavourite(ctx context.Context, actor *entity.User, worldID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		worldRepo := repoFactory.WorldRepo()

		if _, err := worldRepo.FindByID(ctx, worldID); err != nil {
			if errors.Is(err, repository.ErrWorldNotFound) {
				return domainerrors.ErrNotFound.WithMessagef("world not found")
			}

			return errors.Wrap(err, "failed to find world by id")
		}

		return worldRepo.AddFavourite(ctx, worldID, actor.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Add favourite failed", slog.Any("worldID", worldID), slog.Any("error", err))

		return err
	}

	return nil
}

// RemoveFavourite unmarks a favourite of the actor.
func (srv *worldService) RemoveFavourite(ctx context.Context, actor *entity.User, worldID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		worldRepo := repoFactory.WorldRepo()

		if _, err := worldRepo.FindByID(ctx, worldID); err != nil {
			if errors.Is(err, repository.ErrWorldNotFound) {
				return domainerrors.ErrNotFound.WithMessagef("world not found")
			}

			return errors.Wrap(err, "failed to find world by id")
		}

		return worldRepo.RemoveFavourite(ctx, worldID, actor.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Remove favourite failed", slog.Any("worldID", worldID), slog.Any("error", err))

		return err
	}

	return nil
}

// loadGatedWorld loads a world and checks the mutation gates shared by update
// and delete: 404 unknown, 424 orphaned, 403 non-creator.
func loadGatedWorld(ctx context.Context, worldRepo repository.WorldRepository, actor *entity.User, id uuid.UUID) (*entity.World, error) {
	world, err := worldRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorldNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessagef("world not found")
		}

		return nil, errors.Wrap(err, "failed to find world by id")
	}

	if world.Orphaned() {
		return nil, domainerrors.ErrOrphanedResource
	}
	if *world.CreatorID != actor.ID {
		return nil, domainerrors.ErrForbidden.WithMessagef("only the creator can modify this world")
	}

	return world, nil
}

func applyWorldUpdate(world *entity.World, input usecase.UpdateWorldInput) {
	if input.Name != nil {
		world.Name = *input.Name
	}
	if input.Description != nil {
		world.Description = input.Description
	}
	if input.CoverImage != nil {
		world.CoverImage = input.CoverImage
	}
	if input.MapImage != nil {
		world.MapImage = *input.MapImage
	}
}
