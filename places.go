package dealerscout

import "context"

// GeoPoint is a latitude/longitude pair used to seed nearby searches.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// NearbyQuery describes a single nearby-search request. Either Keyword with
// Location/RadiusMeters or a PageToken from a previous response is set; the
// provider rejects requests that mix both.
type NearbyQuery struct {
	Location     GeoPoint
	RadiusMeters uint
	Keyword      string

	// PageToken continues a previous search. Tokens are not valid
	// immediately after being issued; callers must wait before using one.
	PageToken string
}

// NearbyPage is one page of nearby-search results.
type NearbyPage struct {
	// PlaceIDs identifies the businesses on this page.
	PlaceIDs []string

	// NextPageToken is non-empty when more pages are available.
	NextPageToken string
}

// PlaceDetail holds the detail fields fetched for a single place.
type PlaceDetail struct {
	PlaceID          string
	Name             string
	FormattedAddress string
	PhoneNumber      string
	Website          string
	Rating           float64
	Reviews          int
	WeekdayHours     []string
}

// PlacesService is the pipeline's view of the geocoding/places provider.
// Every call costs real-world quota, so implementations must not issue
// speculative requests, and callers throttle detail fetches.
type PlacesService interface {
	// Geocode resolves an address (here: a zip code) to a location.
	// Returns ENOTFOUND if the provider cannot resolve the input.
	Geocode(ctx context.Context, address string) (GeoPoint, error)

	// NearbySearch returns one page of businesses around a location.
	NearbySearch(ctx context.Context, q NearbyQuery) (*NearbyPage, error)

	// PlaceDetails fetches the detail fields for one place ID.
	PlaceDetails(ctx context.Context, placeID string) (*PlaceDetail, error)
}
