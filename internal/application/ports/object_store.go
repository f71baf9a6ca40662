package ports

import (
	"context"
	"io"
)

// ObjectStore is the remote blob-storage collaborator holding listing
// images keyed by images/{ownerId}/{blobKey}.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	Bucket() string
}
