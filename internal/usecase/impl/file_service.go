package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	deliverycontext "atlas/internal/delivery/context"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allowedContentTypes is the upload allow-list. Anything else is rejected
// before a byte is written anywhere.
var allowedContentTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpg":  {},
	"image/jpeg": {},
}

// fileService implements the FileUsecase interface.
type fileService struct {
	txManager repository.TransactionManager
	fileRepo  repository.FileRepository
	storage   service.FileStorage
	logger    *slog.Logger
}

// FileServiceParams holds dependencies for fileService, injected by Fx.
type FileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	FileRepo  repository.FileRepository
	Storage   service.FileStorage
	Logger    *slog.Logger
}

// NewFileService is the constructor for fileService.
func NewFileService(params FileServiceParams) usecase.FileUsecase {
	return &fileService{
		txManager: params.TxManager,
		fileRepo:  params.FileRepo,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (srv *fileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns file metadata rows with optional pagination.
func (srv *fileService) List(ctx context.Context, params repository.ListParams) ([]*entity.File, error) {
	files, err := srv.fileRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list files")
	}

	return files, nil
}

// Upload stores one uploaded image. The stored name is a fresh UUID plus the
// original extension, so uploads never collide and never leak the client's
// filename. If the metadata insert fails after the bytes were written, the
// written file is removed again.
func (srv *fileService) Upload(ctx context.Context, author *entity.User, input usecase.UploadFileInput) (*entity.File, error) {
	if _, ok := allowedContentTypes[input.ContentType]; !ok {
		return nil, domainerrors.ErrValidation.WithMessagef("unsupported file type: %s", input.ContentType)
	}

	filename := generateStoredFilename(input.Filename)

	if err := srv.storage.Save(ctx, filename, input.Content); err != nil {
		return nil, errors.Wrap(err, "failed to store uploaded file")
	}

	authorID := author.ID
	file := &entity.File{
		Filename: filename,
		AuthorID: &authorID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.FileRepo().Create(ctx, file)
	})
	if err != nil {
		srv.log(ctx).Warn("File metadata insert failed, removing stored file",
			slog.String("filename", filename), slog.Any("error", err))
		if removeErr := srv.storage.Remove(ctx, filename); removeErr != nil {
			srv.log(ctx).Error("Failed to remove stored file after insert failure",
				slog.String("filename", filename), slog.Any("error", removeErr))
		}

		return nil, err
	}

	srv.log(ctx).Info("File uploaded", slog.String("filename", filename), slog.Any("authorID", author.ID))

	return file, nil
}

// generateStoredFilename builds the stored name from a fresh UUID (hex, no
// dashes) and the lowercased extension of the client filename.
func generateStoredFilename(originalName string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	ext := strings.ToLower(filepath.Ext(originalName))

	return id + ext
}
