package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

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

// fileServiceFixtures holds all test dependencies for file service tests.
type fileServiceFixtures struct {
	service   usecase.FileUsecase
	txManager *mockRepo.MockTransactionManager
	fileRepo  *mockRepo.MockFileRepository
	storage   *mockSvc.MockFileStorage
}

func createTestFileService(t *testing.T) fileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	fileRepo := mockRepo.NewMockFileRepository(t)
	storage := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFileService(FileServiceParams{
		TxManager: txManager,
		FileRepo:  fileRepo,
		Storage:   storage,
		Logger:    logger,
	})

	return fileServiceFixtures{
		service:   service,
		txManager: txManager,
		fileRepo:  fileRepo,
		storage:   storage,
	}
}

func TestFileService_Upload_Success(t *testing.T) {
	fx := createTestFileService(t)

	ctx := context.Background()
	author := &entity.User{ID: uuid.New()}
	content := strings.NewReader("png bytes")

	var storedName string
	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), content).
		Run(func(ctx context.Context, filename string, content io.Reader) {
			storedName = filename
		}).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFileRepo := mockRepo.NewMockFileRepository(t)

			mockFactory.EXPECT().FileRepo().Return(mockFileRepo)
			mockFileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.File")).Return(nil)

			return fn(mockFactory)
		})

	file, err := fx.service.Upload(ctx, author, usecase.UploadFileInput{
		Filename:    "My Holiday Photo.PNG",
		ContentType: "image/png",
		Content:     content,
	})

	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, storedName, file.Filename)
	assert.True(t, strings.HasSuffix(file.Filename, ".png"), "extension should be lowercased")
	assert.NotContains(t, file.Filename, "-", "uuid dashes should be stripped")
	require.NotNil(t, file.AuthorID)
	assert.Equal(t, author.ID, *file.AuthorID)
}

func TestFileService_Upload_DisallowedContentType(t *testing.T) {
	fx := createTestFileService(t)

	ctx := context.Background()
	author := &entity.User{ID: uuid.New()}

	// Rejected before any storage or database call happens.
	file, err := fx.service.Upload(ctx, author, usecase.UploadFileInput{
		Filename:    "report.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF"),
	})

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
	fx.storage.AssertNotCalled(t, "Save")
	fx.txManager.AssertNotCalled(t, "Execute")
}

func TestFileService_Upload_InsertFailureRemovesStoredFile(t *testing.T) {
	fx := createTestFileService(t)

	ctx := context.Background()
	author := &entity.User{ID: uuid.New()}
	content := strings.NewReader("jpeg bytes")
	insertErr := domainerrors.ErrConflict.WithMessagef("file already exists")

	var storedName string
	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), content).
		Run(func(ctx context.Context, filename string, content io.Reader) {
			storedName = filename
		}).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFileRepo := mockRepo.NewMockFileRepository(t)

			mockFactory.EXPECT().FileRepo().Return(mockFileRepo)
			mockFileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.File")).Return(insertErr)

			return fn(mockFactory)
		})

	fx.storage.EXPECT().
		Remove(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(ctx context.Context, filename string) error {
			assert.Equal(t, storedName, filename)

			return nil
		})

	file, err := fx.service.Upload(ctx, author, usecase.UploadFileInput{
		Filename:    "photo.jpeg",
		ContentType: "image/jpeg",
		Content:     content,
	})

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestFileService_Upload_StorageFailure(t *testing.T) {
	fx := createTestFileService(t)

	ctx := context.Background()
	author := &entity.User{ID: uuid.New()}
	content := strings.NewReader("png bytes")

	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), content).
		Return(errors.New("disk full"))

	file, err := fx.service.Upload(ctx, author, usecase.UploadFileInput{
		Filename:    "photo.png",
		ContentType: "image/png",
		Content:     content,
	})

	assert.Error(t, err)
	assert.Nil(t, file)
	fx.txManager.AssertNotCalled(t, "Execute")
}

func TestGenerateStoredFilename(t *testing.T) {
	name := generateStoredFilename("Family Portrait.JPG")

	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.Len(t, name, 36) // 32 hex chars plus ".jpg"
	assert.NotContains(t, name, "-")

	// No extension on the client name means no extension on the stored name.
	bare := generateStoredFilename("photo")
	assert.Len(t, bare, 32)
}
