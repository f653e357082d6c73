package object

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidKey is returned when a storage key would escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// ObjectStore defines the contract for saving and retrieving uploaded files.
type ObjectStore interface {
	// Save writes r under key and returns the path it was stored at.
	Save(ctx context.Context, key string, r io.Reader) (storagePath string, sizeBytes int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
