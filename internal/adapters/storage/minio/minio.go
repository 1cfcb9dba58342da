package minio

import (
	"context"
	"fmt"
	"log/slog"
	"med-voice/internal/config"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Upload stores the local file under objectKey and returns a stable
// retrievable URL
func (a *Adapter) Upload(ctx context.Context, localPath, objectKey, contentType string) (string, error) {
	info, err := a.client.FPutObject(ctx, a.config.BucketName, objectKey, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	a.logger.Info("object uploaded", "object_key", objectKey, "size_bytes", info.Size)
	return a.objectURL(objectKey), nil
}

// Download fetches the object into localPath
func (a *Adapter) Download(ctx context.Context, objectKey, localPath string) error {
	if err := a.client.FGetObject(ctx, a.config.BucketName, objectKey, localPath, minio.GetObjectOptions{}); err != nil {
		return fmt.Errorf("failed to download object: %w", err)
	}
	return nil
}

// Remove deletes the object
func (a *Adapter) Remove(ctx context.Context, objectKey string) error {
	if err := a.client.RemoveObject(ctx, a.config.BucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

func (a *Adapter) objectURL(objectKey string) string {
	if a.config.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(a.config.PublicBaseURL, "/"), a.config.BucketName, objectKey)
	}
	scheme := "http"
	if a.config.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, a.config.Endpoint, a.config.BucketName, objectKey)
}
