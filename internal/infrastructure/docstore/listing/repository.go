package listing

import (
	"context"

	"webcars-api/internal/application/ports"
	domain "webcars-api/internal/domain/listing"
	"webcars-api/internal/infrastructure/docstore"
)

const Collection = "cars"

type Repository struct {
	store ports.DocumentStore
}

func NewRepository(store ports.DocumentStore) domain.Repository {
	return &Repository{store: store}
}

func (r *Repository) FetchListings(ctx context.Context) (domain.Listings, error) {
	docs, err := r.store.QueryDocuments(ctx, Collection, docstore.Query{
		OrderBy: "created",
		Desc:    true,
	})
	if err != nil {
		return nil, err
	}

	ls := make(domain.Listings, 0, len(docs))
	for _, doc := range docs {
		l, err := fromDocument(doc.ID, doc.Fields)
		if err != nil {
			return nil, err
		}
		ls = append(ls, l)
	}

	return ls, nil
}

func (r *Repository) FetchListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	fields, err := r.store.GetDocument(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, nil
	}

	return fromDocument(id, fields)
}

func (r *Repository) CreateListing(ctx context.Context, req *domain.Listing) (string, error) {
	return r.store.AddDocument(ctx, Collection, toFields(req))
}
