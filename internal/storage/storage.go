package storage

import (
	"context"
	"time"
)

type FileStorage interface {
	// UploadFile stores an image under prefix and returns its URL.
	UploadFile(ctx context.Context, data []byte, prefix string) (string, error)

	DeleteFile(ctx context.Context, fileURL string) error

	GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error)
}
