// Package firestore implements the document store over Cloud Firestore,
// the backend the original marketplace ran against.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"webcars-api/internal/infrastructure/docstore"
)

type Store struct {
	logger *zap.Logger
	client *firestore.Client
}

func New(ctx context.Context, logger *zap.Logger, projectID string) (*Store, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	logger.Info("firestore connected successfully", zap.String("project_id", projectID))

	return &Store{logger: logger, client: client}, nil
}

func (s *Store) AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	doc := s.client.Collection(collection).NewDoc()
	if _, err := doc.Create(ctx, fields); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return "", docstore.ErrDuplicate
		}
		return "", fmt.Errorf("while creating document in %s: %w", collection, err)
	}

	return doc.ID, nil
}

func (s *Store) GetDocument(ctx context.Context, collection, id string) (map[string]any, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("while fetching document %s/%s: %w", collection, id, err)
	}

	return snap.Data(), nil
}

func (s *Store) QueryDocuments(ctx context.Context, collection string, q docstore.Query) ([]docstore.Document, error) {
	fq := s.client.Collection(collection).Query
	if q.Where != nil {
		fq = fq.Where(q.Where.Field, "==", q.Where.Value)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Desc {
			dir = firestore.Desc
		}
		fq = fq.OrderBy(q.OrderBy, dir)
	}

	iter := fq.Documents(ctx)
	defer iter.Stop()

	var docs []docstore.Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("while querying %s: %w", collection, err)
		}

		docs = append(docs, docstore.Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}

	return docs, nil
}

func (s *Store) UpdateDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for name, value := range fields {
		updates = append(updates, firestore.Update{Path: name, Value: value})
	}

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return docstore.ErrNotFound
		}
		return fmt.Errorf("while updating document %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *Store) Close() error { return s.client.Close() }
