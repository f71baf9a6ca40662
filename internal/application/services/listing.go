package services

import (
	"context"

	"webcars-api/internal/application/ports"
	domain "webcars-api/internal/domain/listing"
)

// The detail-page image slider shows one image per step on narrow
// viewports and two from this width up.
const sliderBreakpointPx = 720

type ListingService struct {
	listingRepository domain.Repository
}

func NewListingService(
	listingRepository domain.Repository,
) ports.ListingService {
	return &ListingService{
		listingRepository: listingRepository,
	}
}

func (ls *ListingService) FindListings(ctx context.Context) (domain.Listings, error) {
	listings, err := ls.listingRepository.FetchListings(ctx)
	if err != nil {
		return nil, err
	}

	return listings, nil
}

func (ls *ListingService) FindListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	l, err := ls.listingRepository.FetchListingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return l, nil
}

// SliderPerView maps a viewport width in pixels to the number of slider
// images visible per step. The boundary is inclusive-high: 719 shows one,
// 720 shows two.
func SliderPerView(viewportWidth int) int {
	if viewportWidth < sliderBreakpointPx {
		return 1
	}
	return 2
}
