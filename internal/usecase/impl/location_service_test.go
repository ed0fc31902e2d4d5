package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	mockRepo "atlas/internal/mocks/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	txManager    *mockRepo.MockTransactionManager
	locationRepo *mockRepo.MockLocationRepository
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewLocationService(LocationServiceParams{
		TxManager:    txManager,
		LocationRepo: locationRepo,
		Logger:       logger,
	})

	return locationServiceFixtures{
		service:      service,
		txManager:    txManager,
		locationRepo: locationRepo,
	}
}

func testLocation(worldID uuid.UUID, creatorID *uuid.UUID) *entity.Location {
	return &entity.Location{
		ID:        uuid.New(),
		Name:      "Rivendell",
		WorldID:   worldID,
		CreatorID: creatorID,
	}
}

func TestLocationService_Create_UnknownWorld(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	creator := &entity.User{ID: uuid.New()}
	worldID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorldRepo := mockRepo.NewMockWorldRepository(t)

			mockFactory.EXPECT().WorldRepo().Return(mockWorldRepo)
			mockWorldRepo.EXPECT().FindByID(ctx, worldID).Return(nil, repository.ErrWorldNotFound)

			return fn(mockFactory)
		})

	location, err := fx.service.Create(ctx, creator, usecase.CreateLocationInput{
		Name:    "Rivendell",
		WorldID: worldID,
	})

	assert.Error(t, err)
	assert.Nil(t, location)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestLocationService_Create_WithInlineImages(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	creator := &entity.User{ID: uuid.New()}
	world := testWorld(&creator.ID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorldRepo := mockRepo.NewMockWorldRepository(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().WorldRepo().Return(mockWorldRepo)
			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockWorldRepo.EXPECT().FindByID(ctx, world.ID).Return(world, nil)
			mockLocationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Location")).
				Run(func(ctx context.Context, location *entity.Location) {
					location.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	// The first attach fails but must not undo the location or stop the rest.
	fx.locationRepo.EXPECT().
		AttachImage(ctx, mock.MatchedBy(func(image *entity.LocationImage) bool {
			return image.Image == "broken.png"
		})).
		Return(domainerrors.ErrValidation.WithMessagef("image references an unknown file or location"))
	fx.locationRepo.EXPECT().
		AttachImage(ctx, mock.MatchedBy(func(image *entity.LocationImage) bool {
			return image.Image == "tower.png"
		})).
		Return(nil)

	location, err := fx.service.Create(ctx, creator, usecase.CreateLocationInput{
		Name:    "Rivendell",
		WorldID: world.ID,
		Images: []usecase.LocationImageInput{
			{Image: "broken.png"},
			{Image: "tower.png"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, location)
	assert.NotEqual(t, uuid.Nil, location.ID)
}

func TestLocationService_Update_NonCreatorForbidden(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	actor := &entity.User{ID: uuid.New()}
	location := testLocation(uuid.New(), &creatorID)
	newName := "Renamed"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().FindByID(ctx, location.ID).Return(location, nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.Update(ctx, actor, location.ID, usecase.UpdateLocationInput{Name: &newName})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestLocationService_Update_OrphanedLocation(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	location := testLocation(uuid.New(), nil)
	newName := "Renamed"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().FindByID(ctx, location.ID).Return(location, nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.Update(ctx, actor, location.ID, usecase.UpdateLocationInput{Name: &newName})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrOrphanedResource))
}

func TestLocationService_Update_UnknownTargetWorld(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	location := testLocation(uuid.New(), &actor.ID)
	targetWorldID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)
			mockWorldRepo := mockRepo.NewMockWorldRepository(t)

			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockFactory.EXPECT().WorldRepo().Return(mockWorldRepo)
			mockLocationRepo.EXPECT().FindByID(ctx, location.ID).Return(location, nil)
			mockWorldRepo.EXPECT().FindByID(ctx, targetWorldID).Return(nil, repository.ErrWorldNotFound)

			return fn(mockFactory)
		})

	updated, err := fx.service.Update(ctx, actor, location.ID, usecase.UpdateLocationInput{WorldID: &targetWorldID})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestLocationService_AttachImage_UnknownReference(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()

	// A bad file or location reference is an FK violation and comes back from
	// the repository as a validation error, not a 404.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().
				AttachImage(ctx, mock.AnythingOfType("*entity.LocationImage")).
				Return(domainerrors.ErrValidation.WithMessagef("image references an unknown file or location"))

			return fn(mockFactory)
		})

	image, err := fx.service.AttachImage(ctx, locationID, usecase.LocationImageInput{Image: "tower.png"})

	assert.Error(t, err)
	assert.Nil(t, image)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestLocationService_AttachImage_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()
	name := "The Tower"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().AttachImage(ctx, mock.AnythingOfType("*entity.LocationImage")).Return(nil)

			return fn(mockFactory)
		})

	image, err := fx.service.AttachImage(ctx, locationID, usecase.LocationImageInput{
		Image: "tower.png",
		Name:  &name,
	})

	require.NoError(t, err)
	require.NotNil(t, image)
	assert.Equal(t, "tower.png", image.Image)
	assert.Equal(t, locationID, image.LocationID)
}

func TestLocationService_DetachImage_Unconditional(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()

	// No existence check: detaching from an unknown location is a no-op.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().DetachImage(ctx, locationID, "tower.png").Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DetachImage(ctx, locationID, "tower.png")

	require.NoError(t, err)
}

func TestLocationService_ListImages_UnknownLocationEmpty(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().ListImages(ctx, locationID).Return([]*entity.LocationImage{}, nil)

	images, err := fx.service.ListImages(ctx, locationID)

	require.NoError(t, err)
	assert.Empty(t, images)
}
