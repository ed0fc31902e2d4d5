package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table. Deleting the world removes its
// locations; deleting the creator only detaches them.
type LocationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description *string    `gorm:"type:text"`
	WorldID     uuid.UUID  `gorm:"type:uuid;not null"`
	CreatorID   *uuid.UUID `gorm:"type:uuid"`
	CoordX      float64
	CoordY      float64
	CreatedAt   time.Time

	World   *WorldModel `gorm:"foreignKey:WorldID;constraint:OnDelete:CASCADE"`
	Creator *UserModel  `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// LocationImageModel mirrors the 'location_images' table. The composite
// primary key (image, location_id) guarantees an image attaches to a location
// at most once; both sides cascade on delete.
type LocationImageModel struct {
	Image       string    `gorm:"type:text;primaryKey"`
	LocationID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        *string   `gorm:"type:varchar(255)"`
	Description *string   `gorm:"type:text"`

	File     *FileModel     `gorm:"foreignKey:Image;references:Filename;constraint:OnDelete:CASCADE"`
	Location *LocationModel `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LocationImageModel) TableName() string {
	return "location_images"
}
