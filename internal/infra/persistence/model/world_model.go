package model

import (
	"time"

	"github.com/google/uuid"
)

// WorldModel mirrors the 'worlds' table. Deleting the creator detaches the
// world (SET NULL); deleting the world removes its locations (CASCADE,
// declared on LocationModel).
type WorldModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description *string    `gorm:"type:text"`
	CoverImage  *string    `gorm:"type:text"`
	MapImage    string     `gorm:"type:text;not null"`
	CreatorID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time

	Creator *UserModel `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (WorldModel) TableName() string {
	return "worlds"
}

// FavouriteWorldModel mirrors the 'favourite_worlds' table. The composite
// primary key makes the favourite insert naturally idempotent.
type FavouriteWorldModel struct {
	WorldID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey"`

	World *WorldModel `gorm:"foreignKey:WorldID;constraint:OnDelete:CASCADE"`
	User  *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavouriteWorldModel) TableName() string {
	return "favourite_worlds"
}
