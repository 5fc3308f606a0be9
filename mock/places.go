package mock

import (
	"context"

	"github.com/jmalczyk/dealerscout"
)

var _ dealerscout.PlacesService = (*PlacesService)(nil)

// PlacesService is a mock implementation of dealerscout.PlacesService.
type PlacesService struct {
	GeocodeFn      func(ctx context.Context, address string) (dealerscout.GeoPoint, error)
	NearbySearchFn func(ctx context.Context, q dealerscout.NearbyQuery) (*dealerscout.NearbyPage, error)
	PlaceDetailsFn func(ctx context.Context, placeID string) (*dealerscout.PlaceDetail, error)
}

func (s *PlacesService) Geocode(ctx context.Context, address string) (dealerscout.GeoPoint, error) {
	return s.GeocodeFn(ctx, address)
}

func (s *PlacesService) NearbySearch(ctx context.Context, q dealerscout.NearbyQuery) (*dealerscout.NearbyPage, error) {
	return s.NearbySearchFn(ctx, q)
}

func (s *PlacesService) PlaceDetails(ctx context.Context, placeID string) (*dealerscout.PlaceDetail, error) {
	return s.PlaceDetailsFn(ctx, placeID)
}
