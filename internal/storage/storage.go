// Package storage abstracts where uploaded files (candidate photos,
// CV attachments) live. The default backend is the local disk served
// under /uploads; an object store can slot in behind the same
// interface.
package storage

import (
	"context"
	"io"
)

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type Storage interface {
	// Upload writes the content under the given relative path and
	// returns the public URL it is reachable at.
	Upload(ctx context.Context, path string, content io.Reader) (string, error)
	// Remove deletes a previously uploaded file. Missing files are not
	// an error.
	Remove(ctx context.Context, path string) error
}
