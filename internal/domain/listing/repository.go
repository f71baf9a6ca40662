package listing

import (
	"context"
)

type Repository interface {
	// FetchListings returns all listings ordered by creation time
	// descending. No pagination: the feed is fetched in one call.
	FetchListings(ctx context.Context) (Listings, error)
	// FetchListingByID returns nil, nil when no listing exists under id.
	FetchListingByID(ctx context.Context, id string) (*Listing, error)
	CreateListing(ctx context.Context, req *Listing) (string, error)
}
