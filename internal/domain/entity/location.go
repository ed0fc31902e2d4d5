package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a point of interest inside a world. Deleting the world cascades
// to its locations; deleting the creator only detaches them (orphaning).
type Location struct {
	ID          uuid.UUID
	Name        string
	Description *string
	WorldID     uuid.UUID
	CreatorID   *uuid.UUID
	Creator     *User // Loaded alongside the location for presentation, nil for orphans.
	CoordX      float64
	CoordY      float64
	CreatedAt   time.Time
}

// Orphaned reports whether the location has lost its creator.
func (l *Location) Orphaned() bool {
	return l.CreatorID == nil
}

// LocationImage attaches an uploaded file to a location. The (Image,
// LocationID) pair is unique, so attaching the same file twice is a no-op.
type LocationImage struct {
	Image       string // Filename of the uploaded file this image refers to.
	LocationID  uuid.UUID
	Name        *string
	Description *string
}
