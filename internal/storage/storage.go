// Package storage persists product images. The default backend is the local
// filesystem; an S3 backend can be enabled through configuration.
package storage

import (
	"context"
	"io"
)

// ImageStore reads and writes product image blobs by key.
type ImageStore interface {
	// Put stores an image under the given key, overwriting any existing blob.
	Put(ctx context.Context, key string, body io.Reader) error

	// Get opens the image stored under the given key. The caller closes the
	// returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the image stored under the given key. Deleting a missing
	// key is not an error.
	Delete(ctx context.Context, key string) error
}
