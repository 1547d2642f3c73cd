package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/denisAlshanov/ytscribe/internal/config"
	"github.com/denisAlshanov/ytscribe/internal/utils"
)

// NewStorage creates S3 storage, or returns nil when no bucket is configured.
func NewStorage(cfg *config.S3Config) (StorageInterface, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	utils.GetLogger().WithField("endpoint", cfg.EndpointURL).WithField("bucket", cfg.BucketName).Info("Creating S3 storage")
	storage, err := NewS3Storage(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 storage: %w", err)
	}

	return storage, nil
}

// ObjectKey places fileName under prefix in a per-export directory so
// repeated downloads of the same name never collide.
func ObjectKey(prefix, fileName string) string {
	return path.Join(strings.Trim(prefix, "/"), uuid.New().String(), path.Base(fileName))
}

// Location renders a bucket and key as an s3:// URI.
func Location(bucket, key string) string {
	return "s3://" + bucket + "/" + key
}
