package gcs

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"

	"webcars-api/config"
)

// Client is the object-store collaborator backed by a GCS bucket.
type Client struct {
	logger *zap.Logger
	bucket string
	gcs    *storage.Client
}

func New(ctx context.Context, logger *zap.Logger, cfg config.GCS) (*Client, error) {
	if cfg.BucketImages == "" {
		return nil, fmt.Errorf("incomplete GCS config: bucket is required")
	}

	gcsClient, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("while creating GCS client: %w", err)
	}

	logger.Info("gcs connected successfully", zap.String("bucket", cfg.BucketImages))

	return &Client{
		logger: logger,
		bucket: cfg.BucketImages,
		gcs:    gcsClient,
	}, nil
}

func (c *Client) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	w := c.gcs.Bucket(c.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("while uploading object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("while finalizing object %q: %w", key, err)
	}

	return nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.gcs.Bucket(c.bucket).Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("while deleting object %q: %w", key, err)
	}

	return nil
}

func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", url.PathEscape(c.bucket), key)
}

func (c *Client) Bucket() string { return c.bucket }

func (c *Client) Close() error { return c.gcs.Close() }
