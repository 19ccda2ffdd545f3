// Package storage persists photo bytes. The database only tracks metadata;
// the backends here own the binary content. Local disk is the default,
// MinIO is available for deployments that already run object storage.
package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrInvalidPath is returned before any read or write when the requested
	// location would escape the vehicle's own directory or object prefix.
	ErrInvalidPath = errors.New("storage: path escapes vehicle directory")

	// ErrNotFound is returned when the requested object does not exist or
	// cannot be read.
	ErrNotFound = errors.New("storage: file not found")
)

// PhotoStorage stores photo content under a per-vehicle namespace.
// Save returns the backend-specific location (absolute path or object key)
// that is recorded in the metadata row and later passed to Remove.
type PhotoStorage interface {
	Save(ctx context.Context, vehicleID, fileName string, r io.Reader, size int64, contentType string) (string, error)
	Open(ctx context.Context, vehicleID, fileName string) (io.ReadCloser, error)
	Remove(ctx context.Context, location string) error
	RemoveAll(ctx context.Context, vehicleID string) error
}
