package port

import "context"

// ObjectStorage is an interface to define durable object storage interactions
type ObjectStorage interface {
	Upload(ctx context.Context, localPath, objectKey, contentType string) (string, error)
	Download(ctx context.Context, objectKey, localPath string) error
	Remove(ctx context.Context, objectKey string) error
}
