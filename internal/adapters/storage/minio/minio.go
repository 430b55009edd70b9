package minio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/VeeVeeOficial/photoclound/internal/config"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter deletes binary payloads straight from the bucket behind the upload
// endpoint. Uploads go through the endpoint; the scheduled jobs and the cleanup
// worker hold privileged storage access and delete directly.
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
		return nil, fmt.Errorf("bucket %s does not exist", cfg.BucketName)
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

var _ port.PayloadStorage = (*Adapter)(nil)

// DeleteObject removes the payload at the logical path. A payload that is
// already gone counts as success, so double deletes stay benign.
func (a *Adapter) DeleteObject(ctx context.Context, filePath string) error {
	err := a.client.RemoveObject(ctx, a.config.BucketName, filePath, minio.RemoveObjectOptions{})
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("failed to delete object %s: %w", filePath, err)
	}
	return nil
}
