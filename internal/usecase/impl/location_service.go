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

// locationService implements the LocationUsecase interface.
type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for locationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns locations matching the search/pagination parameters.
func (srv *locationService) List(ctx context.Context, params repository.ListParams) ([]*entity.Location, error) {
	locations, err := srv.locationRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

// GetByID returns a single location.
func (srv *locationService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessagef("location not found")
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return location, nil
}

// Create persists a new location owned by the caller. The target world must
// exist before anything is written. Inline images are attached after the
// location row committed, each independently; a failed attach never undoes
// the location itself.
func (srv *locationService) Create(ctx context.Context, creator *entity.User, input usecase.CreateLocationInput) (*entity.Location, error) {
	creatorID := creator.ID
	newLocation := &entity.Location{
		Name:        input.Name,
		Description: input.Description,
		WorldID:     input.WorldID,
		CreatorID:   &creatorID,
		Creator:     creator,
		CoordX:      input.CoordX,
		CoordY:      input.CoordY,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.WorldRepo().FindByID(ctx, input.WorldID); err != nil {
			if errors.Is(err, repository.ErrWorldNotFound) {
				return domainerrors.ErrNotFound.WithMessagef("world not found")
			}

			return errors.Wrap(err, "failed to find world by id")
		}

		return repoFactory.LocationRepo().Create(ctx, newLocation)
	})
	if err != nil {
		srv.log(ctx).Warn("Location create failed", slog.Any("worldID", input.WorldID), slog.Any("error", err))

		return nil, err
	}

	for _, imageInput := range input.Images {
		image := &entity.LocationImage{
			Image:       imageInput.Image,
			LocationID:  newLocation.ID,
			Name:        imageInput.Name,
			Description: imageInput.Description,
		}
		if err := srv.locationRepo.AttachImage(ctx, image); err != nil {
			srv.log(ctx).Warn("Inline image attach failed",
				slog.Any("locationID", newLocation.ID),
				slog.String("image", imageInput.Image),
				slog.Any("error", err))
		}
	}

	srv.log(ctx).Debug("Location created", slog.Any("locationID", newLocation.ID))

	return newLocation, nil
}

// Update applies a partial update to a location after the mutation gates:
// 404 unknown, 424 orphaned, 403 non-creator. Moving the location to another
// world or handing it over to another user requires the target to exist.
func (srv *locationService) Update(ctx context.Context, actor *entity.User, id uuid.UUID, input usecase.UpdateLocationInput) (*entity.Location, error) {
	var updatedLocation *entity.Location

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.LocationRepo()

		location, err := loadGatedLocation(ctx, locationRepo, actor, id)
		if err != nil {
			return err
		}

		if input.WorldID != nil && *input.WorldID != location.WorldID {
			if _, findErr := repoFactory.WorldRepo().FindByID(ctx, *input.WorldID); findErr != nil {
				if errors.Is(findErr, repository.ErrWorldNotFound) {
					return domainerrors.ErrValidation.WithMessagef("target world does not exist")
				}

				return errors.Wrap(findErr, "failed to load target world")
			}
			location.WorldID = *input.WorldID
		}
		if input.CreatorID != nil && *input.CreatorID != *location.CreatorID {
			newCreator, findErr := repoFactory.UserRepo().FindByID(ctx, *input.CreatorID)
			if findErr != nil {
				if errors.Is(findErr, repository.ErrUserNotFound) {
					return domainerrors.ErrValidation.WithMessagef("new creator does not exist")
				}

				return errors.Wrap(findErr, "failed to load new creator")
			}
			location.CreatorID = input.CreatorID
			location.Creator = newCreator
		}
		applyLocationUpdate(location, input)

		if err := locationRepo.Update(ctx, location); err != nil {
			return errors.Wrap(err, "failed to update location")
		}
		updatedLocation = location

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Location update failed", slog.Any("locationID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Location updated", slog.Any("locationID", id))

	return updatedLocation, nil
}

// Delete removes a location after the same gates as Update.
func (srv *locationService) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.LocationRepo()

		location, err := loadGatedLocation(ctx, locationRepo, actor, id)
		if err != nil {
			return err
		}

		return locationRepo.Delete(ctx, location.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Location delete failed", slog.Any("locationID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Location deleted", slog.Any("locationID", id))

	return nil
}

// ListImages returns the image attachments of a location. An unknown location
// simply has no attachments, so the result is an empty list, not an error.
func (srv *locationService) ListImages(ctx context.Context, locationID uuid.UUID) ([]*entity.LocationImage, error) {
	images, err := srv.locationRepo.ListImages(ctx, locationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list location images")
	}

	return images, nil
}

// AttachImage links an uploaded file to a location. A duplicate pair is a
// silent no-op; an unknown file or location surfaces as the validation error
// the repository produces from the FK violation.
func (srv *locationService) AttachImage(ctx context.Context, locationID uuid.UUID, input usecase.LocationImageInput) (*entity.LocationImage, error) {
	image := &entity.LocationImage{
		Image:       input.Image,
		LocationID:  locationID,
		Name:        input.Name,
		Description: input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.LocationRepo().AttachImage(ctx, image)
	})
	if err != nil {
		srv.log(ctx).Warn("Image attach failed", slog.Any("locationID", locationID), slog.Any("error", err))

		return nil, err
	}

	return image, nil
}

// DetachImage removes the link between a file and a location. Detaching an
// absent pair is a silent no-op.
func (srv *locationService) DetachImage(ctx context.Context, locationID uuid.UUID, imageName string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.LocationRepo().DetachImage(ctx, locationID, imageName)
	})
	if err != nil {
		srv.log(ctx).Warn("Image detach failed", slog.Any("locationID", locationID), slog.Any("error", err))

		return err
	}

	return nil
}

// loadGatedLocation loads a location and checks the mutation gates shared by
// update and delete: 404 unknown, 424 orphaned, 403 non-creator.
func loadGatedLocation(ctx context.Context, locationRepo repository.LocationRepository, actor *entity.User, id uuid.UUID) (*entity.Location, error) {
	location, err := locationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessagef("location not found")
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	if location.Orphaned() {
		return nil, domainerrors.ErrOrphanedResource
	}
	if *location.CreatorID != actor.ID {
		return nil, domainerrors.ErrForbidden.WithMessagef("only the creator can modify this location")
	}

	return location, nil
}

func applyLocationUpdate(location *entity.Location, input usecase.UpdateLocationInput) {
	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.Description != nil {
		location.Description = input.Description
	}
	if input.CoordX != nil {
		location.CoordX = *input.CoordX
	}
	if input.CoordY != nil {
		location.CoordY = *input.CoordY
	}
}
