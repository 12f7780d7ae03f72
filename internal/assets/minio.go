package assets

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/devfolio/devfolio/backend/go-services/internal/config"
)

// Store is the minimal surface the rest of the service needs from the asset
// host: best-effort removal plus presigned read access for the admin panel.
type Store interface {
	Remove(ctx context.Context, key string) error
	PresignedGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

// MinIOStore is a thin wrapper around the minio client.
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore creates the asset-store client and ensures the bucket exists.
func NewMinIOStore(cfg config.StorageConfig) (*MinIOStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("asset store config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	s := &MinIOStore{client: mc, bucket: cfg.Bucket}
	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

// Remove deletes the stored object. Missing objects are not an error.
func (s *MinIOStore) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// PresignedGet returns a presigned GET URL valid for the given duration.
func (s *MinIOStore) PresignedGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	reqParams := make(url.Values)
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, expires, reqParams)
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}
