// Package storage implements the static file storage area on the local disk.
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"atlas/config"
	"atlas/internal/domain/service"
)

// localStorage writes uploaded files under a single directory that is also
// exposed through the HTTP static route.
type localStorage struct {
	dir string
}

// NewLocalStorage creates the storage directory if it is missing and returns
// the FileStorage implementation backed by it.
func NewLocalStorage(cfg *config.Config) (service.FileStorage, error) {
	dir := "static"
	if cfg.Storage != nil && cfg.Storage.Dir != "" {
		dir = cfg.Storage.Dir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create storage directory")
	}

	return &localStorage{dir: dir}, nil
}

// Save writes the content under the given filename. The filename is generated
// by the caller and never contains path separators.
func (s *localStorage) Save(_ context.Context, filename string, content io.Reader) error {
	out, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		return errors.Wrap(err, "failed to write file content")
	}

	return nil
}

// Remove deletes a previously saved file.
func (s *localStorage) Remove(_ context.Context, filename string) error {
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil {
		return errors.Wrap(err, "failed to remove file")
	}

	return nil
}
