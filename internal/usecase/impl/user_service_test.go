package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	mockRepo "atlas/internal/mocks/repository"
	mockSvc "atlas/internal/mocks/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username:    "tester",
		Email:       "test@example.com",
		Password:    "Password123!",
		FirstName:   "Test",
		LastName:    "User",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, input.Username, user.Username)
	assert.Equal(t, "hashed_password", user.Password)
}

func TestUserService_Register_Conflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrConflict.WithMessagef("user with this username or email already exists"))

			return fn(mockFactory)
		})

	user, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:       uuid.New(),
		Username: "tester",
		Email:    "test@example.com",
		Password: "hashed_password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByLogin(ctx, "tester").Return(existing, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check("Password123!", existing.Password).Return(true)
	fx.tokenService.EXPECT().Generate(existing.ID).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Login: "tester", Password: "Password123!"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestUserService_Login_UnknownLogin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByLogin(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, usecase.LoginInput{Login: "ghost", Password: "whatever"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:       uuid.New(),
		Username: "tester",
		Password: "hashed_password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByLogin(ctx, "tester").Return(existing, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check("wrong", existing.Password).Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Login: "tester", Password: "wrong"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetByID(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestUserService_UpdateMe_RehashesPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	current := &entity.User{ID: uuid.New(), Username: "tester", Password: "old_hash"}
	newPassword := "NewPassword123!"
	newUsername := "renamed"

	fx.hasher.EXPECT().Hash(newPassword).Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, current.ID).Return(&entity.User{
				ID:       current.ID,
				Username: current.Username,
				Password: current.Password,
			}, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(ctx context.Context, user *entity.User) error {
					assert.Equal(t, "new_hash", user.Password)
					assert.Equal(t, newUsername, user.Username)

					return nil
				})

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateMe(ctx, current, usecase.UpdateUserInput{
		Username: &newUsername,
		Password: &newPassword,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, newUsername, updated.Username)
}

func TestUserService_Delete_Self(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	current := &entity.User{ID: uuid.New(), Username: "tester"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
			mockUserRepo.EXPECT().Delete(ctx, current.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, current, current.ID)

	require.NoError(t, err)
}

func TestUserService_Delete_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	current := &entity.User{ID: uuid.New()}
	unknownID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, current, unknownID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestUserService_Delete_OtherUserForbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	current := &entity.User{ID: uuid.New()}
	other := &entity.User{ID: uuid.New(), Username: "other"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, other.ID).Return(other, nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, current, other.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
