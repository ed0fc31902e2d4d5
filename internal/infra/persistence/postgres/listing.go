package postgres

import (
	"atlas/internal/domain/repository"

	"gorm.io/gorm"
)

// applyPagination applies the optional limit/offset of a list request.
func applyPagination(tx *gorm.DB, params repository.ListParams) *gorm.DB {
	if params.Limit != nil {
		tx = tx.Limit(*params.Limit)
	}
	if params.Offset != nil {
		tx = tx.Offset(*params.Offset)
	}

	return tx
}
