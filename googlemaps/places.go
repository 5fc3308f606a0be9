// Package googlemaps implements dealerscout.PlacesService on top of the
// official Google Maps Web Services client. It speaks the legacy Places
// API (nearby search + place details) and the Geocoding API.
package googlemaps

import (
	"context"

	"github.com/jmalczyk/dealerscout"
	"googlemaps.github.io/maps"
)

// detailFields limits the place-details response to the fields the
// pipeline renders. Every field past the basic set bills separately, so
// the mask is deliberately short.
var detailFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskName,
	maps.PlaceDetailsFieldMaskFormattedAddress,
	maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
	maps.PlaceDetailsFieldMaskWebsite,
	maps.PlaceDetailsFieldMaskPlaceID,
	maps.PlaceDetailsFieldMaskRatings,
	maps.PlaceDetailsFieldMaskUserRatingsTotal,
	maps.PlaceDetailsFieldMaskOpeningHours,
}

// Ensure Service implements dealerscout.PlacesService at compile time.
var _ dealerscout.PlacesService = (*Service)(nil)

// Service wraps a maps.Client as a dealerscout.PlacesService.
type Service struct {
	client *maps.Client
}

// NewService creates a new Service around an initialized maps client.
func NewService(client *maps.Client) *Service {
	return &Service{client: client}
}

// Geocode resolves an address to a location. Returns ENOTFOUND when the
// provider has no match for the input.
func (s *Service) Geocode(ctx context.Context, address string) (dealerscout.GeoPoint, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return dealerscout.GeoPoint{}, err
	}
	if len(results) == 0 {
		return dealerscout.GeoPoint{}, dealerscout.Errorf(dealerscout.ENOTFOUND, "no location found for %q", address)
	}

	loc := results[0].Geometry.Location
	return dealerscout.GeoPoint{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// NearbySearch returns one page of businesses around a location, filtered
// to car dealers. When q.PageToken is set the other query fields are
// ignored, matching the provider's pagination contract.
func (s *Service) NearbySearch(ctx context.Context, q dealerscout.NearbyQuery) (*dealerscout.NearbyPage, error) {
	req := &maps.NearbySearchRequest{}
	if q.PageToken != "" {
		req.PageToken = q.PageToken
	} else {
		req.Location = &maps.LatLng{Lat: q.Location.Lat, Lng: q.Location.Lng}
		req.Radius = q.RadiusMeters
		req.Keyword = q.Keyword
		req.Type = maps.PlaceTypeCarDealer
	}

	resp, err := s.client.NearbySearch(ctx, req)
	if err != nil {
		return nil, err
	}

	page := &dealerscout.NearbyPage{
		PlaceIDs:      make([]string, 0, len(resp.Results)),
		NextPageToken: resp.NextPageToken,
	}
	for _, r := range resp.Results {
		page.PlaceIDs = append(page.PlaceIDs, r.PlaceID)
	}
	return page, nil
}

// PlaceDetails fetches the detail fields for one place ID.
func (s *Service) PlaceDetails(ctx context.Context, placeID string) (*dealerscout.PlaceDetail, error) {
	resp, err := s.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  detailFields,
	})
	if err != nil {
		return nil, err
	}

	detail := &dealerscout.PlaceDetail{
		PlaceID:          resp.PlaceID,
		Name:             resp.Name,
		FormattedAddress: resp.FormattedAddress,
		PhoneNumber:      resp.FormattedPhoneNumber,
		Website:          resp.Website,
		Rating:           float64(resp.Rating),
		Reviews:          resp.UserRatingsTotal,
	}
	if resp.OpeningHours != nil {
		detail.WeekdayHours = resp.OpeningHours.WeekdayText
	}
	return detail, nil
}
