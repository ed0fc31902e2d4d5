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

// worldServiceFixtures holds all test dependencies for world service tests.
type worldServiceFixtures struct {
	service   usecase.WorldUsecase
	txManager *mockRepo.MockTransactionManager
	worldRepo *mockRepo.MockWorldRepository
}

func createTestWorldService(t *testing.T) worldServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	worldRepo := mockRepo.NewMockWorldRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewWorldService(WorldServiceParams{
		TxManager: txManager,
		WorldRepo: worldRepo,
		Logger:    logger,
	})

	return worldServiceFixtures{
		service:   service,
		txManager: txManager,
		worldRepo: worldRepo,
	}
}

func testWorld(creatorID *uuid.UUID) *entity.World {
	return &entity.World{
		ID:        uuid.New(),
		Name:      "Middle Earth",
		MapImage:  "map.png",
		CreatorID: creatorID,
	}
}

func TestWorldService_Create_Success(t *testing.T) {
	fx := createTestWorldService(t)

	ctx := context.Background()
	creator := &entity.User{ID: uuid.New(), Username: "tester"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorldRepo := mockRepo.NewMockWorldRepository(t)

			mockFactory.EXPECT().WorldRepo().Return(mockWorldRepo)
			mockWorldRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.World")).
				Run(func(ctx context.Context, world *entity.World) {
					world.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	world, err := fx.service.Create(ctx, creator, usecase.CreateWorldInput{
		Name:     "Middle Earth",
		MapImage: "map.png",
	})

	require.NoError(t, err)
	require.NotNil(t, world)
	require.NotNil(t, world.CreatorID)
	assert.Equal(t, creator.ID, *world.CreatorID)
}

func TestWorldService_Update_NonCreatorForbidden(t *testing.T) {
	fx := createTestWorldService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	actor := &entity.User{ID: uuid.New()}
	world := testWorld(&creatorID)
	newName := "Renamed"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorldRepo := mockRepo.NewMockWorldRepository(t)

			mockFactory.EXPECT().WorldRepo().Return(mockWorldRepo)
			mockWorldRepo.EXPECT().FindByID(ctx, world.ID).Return(world, nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.Update(ctx, actor, world.ID, usecase.UpdateWorldInput{Name: &newName})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestWorldService_Update_OrphanedWorld(t *testing.T) {
	fx := createTestWorldService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	world := testWorld(nil)
	newName := "Renamed"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorldRepo := mockRepo.NewMockWorldRepository(t)

			mockFactory.EXPECT().WorldRepo().Return(mockWorldRepo)
			mockWorldRepo.EXPECT().FindByID(ctx, world.ID).Return(world, nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.Update(ctx, actor, world.ID, usecase.UpdateWorldInput{Name: &newName})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrOrphanedResource))
}

func TestWorldService_Update_UnknownNewCreator(t *testing.T) {
	fx := createTestWorldService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	world := testWorld(&actor.ID)
	newCreatorID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorldRepo := mockRepo.NewMockWorldRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().WorldRepo().Return(mockWorldRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockWorldRepo.EXPECT().FindByID(ctx, world.ID).Return(world, nil)
			mockUserRepo.EXPECT().FindByID(ctx, newCreatorID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	updated, err := fx.service.Update(ctx, actor, world.ID, usecase.UpdateWorldInput{CreatorID: &newCreatorID})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestWorldService_Update_ReassignCreator(t *testing.T) {
	fx := createTestWorldService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	world := testWorld(&actor.ID)
	newCreator := &entity.User{ID: uuid.New(), Username: "heir"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorldRepo := mockRepo.NewMockWorldRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().WorldRepo().Return(mockWorldRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockWorldRepo.EXPECT().FindByID(ctx, world.ID).Return(world, nil)
			mockUserRepo.EXPECT().FindByID(ctx, newCreator.ID).Return(newCreator, nil)
			mockWorldRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.World")).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.Update(ctx, actor, world.ID, usecase.UpdateWorldInput{CreatorID: &newCreator.ID})

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.CreatorID)
	assert.Equal(t, newCreator.ID, *updated.CreatorID)
}

func TestWorldService_Delete_UnknownWorld(t *testing.T) {
	fx := createTestWorldService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
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

	err := fx.service.Delete(ctx, actor, worldID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestWorldService_AddFavourite_Success(t *testing.T) {
	fx := createTestWorldService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	creatorID := uuid.New()
	world := testWorld(&creatorID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorldRepo := mockRepo.NewMockWorldRepository(t)

			mockFactory.EXPECT().WorldRepo().Return(mockWorldRepo)
			mockWorldRepo.EXPECT().FindByID(ctx, world.ID).Return(world, nil)
			mockWorldRepo.EXPECT().AddFavourite(ctx, world.ID, actor.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.AddFavourite(ctx, actor, world.ID)

	require.NoError(t, err)
}

func TestWorldService_AddFavourite_UnknownWorld(t *testing.T) {
	fx := createTestWorldService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
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

	err := fx.service.AddFavourite(ctx, actor, worldID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestWorldService_RemoveFavourite_Success(t *testing.T) {
	fx := createTestWorldService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	creatorID := uuid.New()
	world := testWorld(&creatorID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorldRepo := mockRepo.NewMockWorldRepository(t)

			mockFactory.EXPECT().WorldRepo().Return(mockWorldRepo)
			mockWorldRepo.EXPECT().FindByID(ctx, world.ID).Return(world, nil)
			mockWorldRepo.EXPECT().RemoveFavourite(ctx, world.ID, actor.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.RemoveFavourite(ctx, actor, world.ID)

	require.NoError(t, err)
}

func TestWorldService_GetByID_NotFound(t *testing.T) {
	fx := createTestWorldService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.worldRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrWorldNotFound)

	world, err := fx.service.GetByID(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, world)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
