// Package search provides dealer discovery orchestration. It coordinates
// geocoding, keyword nearby searches, pagination, detail fetches, zip-code
// filtering, and deduplication into a single dealer lookup.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmalczyk/dealerscout"
	"golang.org/x/time/rate"
)

// DefaultRadiusMeters is the nearby-search radius around the geocoded zip.
const DefaultRadiusMeters = 15000

// DefaultPageTokenDelay is how long to wait before using a pagination
// token. The provider issues tokens that are not valid immediately.
const DefaultPageTokenDelay = 2 * time.Second

// detailRPS throttles place-detail fetches to respect provider rate
// limits (10/s keeps roughly 100ms between requests).
const detailRPS = 10

// DefaultKeywords returns the fixed, ordered keyword variants used to
// discover independent used-car dealers. Broader variants follow the most
// specific one so cross-query deduplication keeps the result stable.
func DefaultKeywords() []string {
	return []string{
		"independent used car dealer",
		"used car dealer",
		"pre-owned car dealer",
		"used auto sales",
		"used vehicle dealer",
	}
}

// Finder orchestrates dealer discovery around a zip code.
type Finder struct {
	Places dealerscout.PlacesService

	// Keywords overrides DefaultKeywords when non-nil.
	Keywords []string

	// RadiusMeters overrides DefaultRadiusMeters when non-zero.
	RadiusMeters uint

	// PageTokenDelay is the wait before fetching a next page. The zero
	// value means no wait; NewFinder sets DefaultPageTokenDelay.
	PageTokenDelay time.Duration

	// DetailLimiter throttles detail fetches. Nil means unthrottled.
	DetailLimiter *rate.Limiter

	// Logger receives per-candidate skip warnings. Nil disables logging.
	Logger *slog.Logger
}

// NewFinder returns a Finder with production defaults around the given
// places service.
func NewFinder(places dealerscout.PlacesService, logger *slog.Logger) *Finder {
	return &Finder{
		Places:         places,
		Keywords:       DefaultKeywords(),
		RadiusMeters:   DefaultRadiusMeters,
		PageTokenDelay: DefaultPageTokenDelay,
		DetailLimiter:  rate.NewLimiter(detailRPS, 1),
		Logger:         logger,
	}
}

// Find locates dealers whose address zip code matches zip exactly.
//
// Only a malformed zip (EINVALID) or an unresolvable location (ENOTFOUND)
// fails the whole search. A failing keyword query skips that keyword; a
// failing detail fetch skips that candidate. An empty result is success.
func (f *Finder) Find(ctx context.Context, zip string) (*dealerscout.DealerSet, error) {
	if !dealerscout.ValidZipCode(zip) {
		return nil, dealerscout.Errorf(dealerscout.EINVALID, "invalid zip code %q: must be exactly five digits", zip)
	}

	location, err := f.Places.Geocode(ctx, zip)
	if err != nil {
		return nil, err
	}

	keywords := f.Keywords
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	radius := f.RadiusMeters
	if radius == 0 {
		radius = DefaultRadiusMeters
	}

	set := dealerscout.NewDealerSet()
	for _, keyword := range keywords {
		if err := f.searchKeyword(ctx, location, radius, keyword, zip, set); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// searchKeyword runs one keyword query through all its pages. Provider
// errors on the query itself are recoverable and end the keyword;
// returned errors are context cancellations only.
func (f *Finder) searchKeyword(ctx context.Context, location dealerscout.GeoPoint, radius uint, keyword, zip string, set *dealerscout.DealerSet) error {
	q := dealerscout.NearbyQuery{
		Location:     location,
		RadiusMeters: radius,
		Keyword:      keyword,
	}

	for {
		page, err := f.Places.NearbySearch(ctx, q)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			f.logWarn("nearby search failed, skipping keyword", "keyword", keyword, "err", err)
			return nil
		}

		for _, placeID := range page.PlaceIDs {
			if err := f.processPlace(ctx, placeID, zip, set); err != nil {
				return err
			}
		}

		if page.NextPageToken == "" {
			return nil
		}

		// The next-page token needs time to become valid.
		if err := sleep(ctx, f.PageTokenDelay); err != nil {
			return err
		}
		q = dealerscout.NearbyQuery{PageToken: page.NextPageToken}
	}
}

// processPlace fetches details for one hit and adds it to the set when
// its zip matches. Detail-fetch failures skip the candidate.
func (f *Finder) processPlace(ctx context.Context, placeID, zip string, set *dealerscout.DealerSet) error {
	if f.DetailLimiter != nil {
		if err := f.DetailLimiter.Wait(ctx); err != nil {
			return err
		}
	}

	detail, err := f.Places.PlaceDetails(ctx, placeID)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		f.logWarn("detail fetch failed, skipping candidate", "placeId", placeID, "err", err)
		return nil
	}

	addressZip, ok := dealerscout.ExtractZipCode(detail.FormattedAddress)
	if !ok || addressZip != zip {
		return nil
	}

	dealer := &dealerscout.Dealer{
		PlaceID: detail.PlaceID,
		Name:    detail.Name,
		Address: detail.FormattedAddress,
		Phone:   detail.PhoneNumber,
		Website: detail.Website,
		Rating:  detail.Rating,
		Reviews: detail.Reviews,
		Hours:   detail.WeekdayHours,
	}
	if overwrote := set.Add(dealer); overwrote {
		// Later queries refetch the same detail endpoint, so an
		// overwrite is normally invisible. Log it in case the provider
		// ever returns inconsistent data for one place ID.
		f.logDebug("duplicate place overwritten", "placeId", placeID)
	}
	return nil
}

func (f *Finder) logWarn(msg string, args ...any) {
	if f.Logger != nil {
		f.Logger.Warn(msg, args...)
	}
}

func (f *Finder) logDebug(msg string, args ...any) {
	if f.Logger != nil {
		f.Logger.Debug(msg, args...)
	}
}

// sleep waits for d or until the context is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
