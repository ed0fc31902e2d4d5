package entity

import (
	"time"

	"github.com/google/uuid"
)

// World is a top-level content container created by a user.
// CreatorID is nil when the creating account has been deleted; such a world is
// orphaned and permanently locked from further edits.
type World struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CoverImage  *string // Stored filename of the cover image, nil when unset.
	MapImage    string  // Stored filename of the world map image.
	CreatorID   *uuid.UUID
	Creator     *User // Loaded alongside the world for presentation, nil for orphans.
	CreatedAt   time.Time
}

// Orphaned reports whether the world has lost its creator.
func (w *World) Orphaned() bool {
	return w.CreatorID == nil
}
