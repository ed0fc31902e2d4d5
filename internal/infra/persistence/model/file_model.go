package model

import (
	"time"

	"github.com/google/uuid"
)

// FileModel mirrors the 'files' table. The generated filename is the primary
// key; the bytes live in the static storage area, not in the database.
type FileModel struct {
	Filename   string     `gorm:"type:text;primaryKey"`
	AuthorID   *uuid.UUID `gorm:"type:uuid"`
	UploadedAt time.Time  `gorm:"autoCreateTime"`

	Author *UserModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (FileModel) TableName() string {
	return "files"
}
