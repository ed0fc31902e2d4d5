package usecase

import (
	"context"
	"io"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
)

// UploadFileInput carries one uploaded file. Filename and ContentType come
// from the multipart part headers; Content streams the bytes.
type UploadFileInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// FileUsecase defines the interface for uploaded-file business operations.
type FileUsecase interface {
	List(ctx context.Context, params repository.ListParams) ([]*entity.File, error)

	// Upload validates the content type, stores the bytes under a generated
	// name and records the metadata row.
	Upload(ctx context.Context, author *entity.User, input UploadFileInput) (*entity.File, error)
}
