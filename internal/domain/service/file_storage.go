package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for the static storage area that holds
// uploaded file bytes. Metadata lives in the relational store; only the
// content goes through this service.
type FileStorage interface {
	// Save writes the content under the given filename.
	Save(ctx context.Context, filename string, content io.Reader) error

	// Remove deletes a previously saved file. Used to undo a write when the
	// metadata insert fails.
	Remove(ctx context.Context, filename string) error
}
