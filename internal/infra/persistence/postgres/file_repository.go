package postgres

import (
	"context"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// fileRepository implements the domain's FileRepository interface using GORM.
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository is the constructor for fileRepository.
func NewFileRepository(db *gorm.DB) repository.FileRepository {
	return &fileRepository{db: db}
}

// List returns file metadata rows with optional pagination.
func (repo *fileRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.File, error) {
	tx := repo.db.WithContext(ctx).Model(&model.FileModel{})

	var fileMs []*model.FileModel
	if err := applyPagination(tx, params).Order("uploaded_at").Find(&fileMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list files")
	}

	files := make([]*entity.File, 0, len(fileMs))
	for _, fileM := range fileMs {
		files = append(files, toFileDomain(fileM))
	}

	return files, nil
}

// Create persists a new file metadata row. The filename is generated from a
// fresh UUID, so a collision means the generator is broken, not the caller.
func (repo *fileRepository) Create(ctx context.Context, file *entity.File) error {
	fileM := fromFileDomain(file)
	if err := repo.db.WithContext(ctx).Create(fileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithMessagef("file with this name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessagef("file references an unknown user")
		}

		return errors.Wrap(err, "failed to create file")
	}

	file.UploadedAt = fileM.UploadedAt

	return nil
}

// --- Mapper Functions ---

// toFileDomain converts a GORM FileModel to a domain File entity.
func toFileDomain(data *model.FileModel) *entity.File {
	if data == nil {
		return nil
	}

	return &entity.File{
		Filename:   data.Filename,
		AuthorID:   data.AuthorID,
		UploadedAt: data.UploadedAt,
	}
}

// fromFileDomain converts a domain File entity to a GORM FileModel.
func fromFileDomain(data *entity.File) *model.FileModel {
	if data == nil {
		return nil
	}

	return &model.FileModel{
		Filename:   data.Filename,
		AuthorID:   data.AuthorID,
		UploadedAt: data.UploadedAt,
	}
}
