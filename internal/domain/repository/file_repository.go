package repository

import (
	"context"

	"atlas/internal/domain/entity"
)

// FileRepository defines the operations for uploaded-file metadata persistence.
type FileRepository interface {
	// List returns file metadata rows with optional pagination.
	List(ctx context.Context, params ListParams) ([]*entity.File, error)

	// Create persists a new file metadata row.
	Create(ctx context.Context, file *entity.File) error
}
