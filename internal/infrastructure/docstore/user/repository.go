package user

import (
	"context"
	"errors"
	"time"

	"webcars-api/internal/application/ports"
	domain "webcars-api/internal/domain/user"
	"webcars-api/internal/infrastructure/docstore"
)

const Collection = "users"

var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository struct {
	store ports.DocumentStore
}

func NewRepository(store ports.DocumentStore) domain.Repository {
	return &Repository{store: store}
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	id, err := r.store.AddDocument(ctx, Collection, toFields(req))
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	req.ID = id

	return &req, nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	fields, err := r.store.GetDocument(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, nil
	}

	return fromDocument(id, fields)
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	docs, err := r.store.QueryDocuments(ctx, Collection, docstore.Query{
		Where: &docstore.Filter{Field: "email", Value: email},
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	// Email is unique; at most one document matches.
	return fromDocument(docs[0].ID, docs[0].Fields)
}

func (r *Repository) UpdateProfile(ctx context.Context, id domain.ID, name string) (*domain.User, error) {
	err := r.store.UpdateDocument(ctx, Collection, id, map[string]any{
		"name":    name,
		"updated": time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.FetchUserByID(ctx, id)
}
