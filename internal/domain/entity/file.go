package entity

import (
	"time"

	"github.com/google/uuid"
)

// File is the metadata row for an uploaded image. The filename doubles as the
// primary key; the bytes themselves live in the static storage area.
type File struct {
	Filename   string
	AuthorID   *uuid.UUID // Nil once the uploading account is deleted.
	UploadedAt time.Time
}
