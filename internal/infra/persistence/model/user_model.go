// Package model contains the GORM persistence models mirroring the database
// schema. They are mapped to and from pure domain entities by the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password       string    `gorm:"type:varchar(255);not null"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	AdditionalName *string   `gorm:"type:varchar(100)"`
	PhoneNumber    *string   `gorm:"type:varchar(15)"`
	DateOfBirth    time.Time `gorm:"type:date;not null"`
	AvatarImage    *string   `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
