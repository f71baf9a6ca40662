package ports

import (
	"context"

	"webcars-api/internal/domain/listing"
)

type ListingService interface {
	FindListings(ctx context.Context) (listing.Listings, error)
	// FindListingByID returns nil, nil for an unknown id; the caller
	// treats that as a not-found recovery, not a hard error.
	FindListingByID(ctx context.Context, id string) (*listing.Listing, error)
}
