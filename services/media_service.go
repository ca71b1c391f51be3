// File: /services/media_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"tripjournal-api/apperrors"
	"tripjournal-api/config"
)

// MediaService is the object-storage gateway. Blobs are keyed by
// opaque strings; locations only hold the keys.
type MediaService struct {
	client *minio.Client
	bucket string
}

func NewMediaService(cfg *config.Config) (*MediaService, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to media store: %w", err)
	}

	service := &MediaService{client: client, bucket: cfg.MediaBucket}
	if err := service.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return service, nil
}

func (m *MediaService) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check media bucket: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create media bucket: %w", err)
		}
	}
	return nil
}

// Upload streams a blob into the store under the given key
func (m *MediaService) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return apperrors.NewDependency("failed to upload media object", err)
	}
	return nil
}

// PresignedURL returns a temporary download URL for the key
func (m *MediaService) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, nil)
	if err != nil {
		return "", apperrors.NewDependency("failed to presign media object", err)
	}
	return u.String(), nil
}

// Delete removes a blob. Removing a key that is already gone succeeds.
func (m *MediaService) Delete(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil
		}
		return apperrors.NewDependency("failed to delete media object", err)
	}
	return nil
}
