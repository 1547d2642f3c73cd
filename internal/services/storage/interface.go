package storage

import (
	"context"
	"io"
)

// StorageInterface is the object store downloaded media is exported to.
type StorageInterface interface {
	BucketName() string
	UploadWithMetadata(ctx context.Context, key string, data io.ReadSeeker, size int64, contentType string, metadata map[string]string) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
