package ports

import (
	"context"

	"webcars-api/internal/infrastructure/docstore"
)

// DocumentStore is the remote document-store collaborator. Ids are opaque:
// callers must not assume any particular shape.
type DocumentStore interface {
	AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error)
	// GetDocument returns nil, nil when no document exists under id.
	GetDocument(ctx context.Context, collection, id string) (map[string]any, error)
	QueryDocuments(ctx context.Context, collection string, q docstore.Query) ([]docstore.Document, error)
	// UpdateDocument merges fields into an existing document.
	UpdateDocument(ctx context.Context, collection, id string, fields map[string]any) error
}
