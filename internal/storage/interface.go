package storage

import (
	"context"
	"io"
)

// BlobStore is the interface for document/photo storage backends.
// The core only ever stores and returns the resulting reference URL,
// never the bytes.
type BlobStore interface {
	// Upload writes the object at key and returns a URL that can be
	// stored on a record and later served to clients.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteByURL removes the object behind a URL previously returned by
	// Upload. Each backend knows how to invert its own URL shape.
	DeleteByURL(ctx context.Context, objectURL string) error
}
