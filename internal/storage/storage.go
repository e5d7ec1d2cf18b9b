// Package storage abstracts where uploaded files (profile images) land.
package storage

import (
	"context"
	"io"
)

// Storage defines the interface for uploaded file storage.
type Storage interface {
	// Save stores a file under the given name and returns its public URL.
	Save(ctx context.Context, name string, reader io.Reader) (string, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error
}
