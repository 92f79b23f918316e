package storage

import (
	"context"
	"errors"
	"io"
)

var ErrInvalidPath = errors.New("invalid file path")

type FileStorage interface {
	// Upload stores file under path, replacing any previous object, and
	// returns the cleaned key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes path; a missing object is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public address of path.
	URL(path string) string
}
