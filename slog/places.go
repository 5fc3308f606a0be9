package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmalczyk/dealerscout"
)

// Ensure LoggingPlacesService implements dealerscout.PlacesService.
var _ dealerscout.PlacesService = (*LoggingPlacesService)(nil)

// LoggingPlacesService wraps a PlacesService with logging. Every provider
// call costs quota, so each one is worth a log line.
type LoggingPlacesService struct {
	next   dealerscout.PlacesService
	logger *slog.Logger
}

// NewLoggingPlacesService creates a new LoggingPlacesService.
func NewLoggingPlacesService(next dealerscout.PlacesService, logger *slog.Logger) *LoggingPlacesService {
	return &LoggingPlacesService{next: next, logger: logger}
}

// Geocode delegates to the wrapped service and logs the operation.
func (s *LoggingPlacesService) Geocode(ctx context.Context, address string) (loc dealerscout.GeoPoint, err error) {
	defer func(begin time.Time) {
		s.logger.Info("geocode",
			"address", address,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Geocode(ctx, address)
}

// NearbySearch delegates to the wrapped service and logs the operation.
func (s *LoggingPlacesService) NearbySearch(ctx context.Context, q dealerscout.NearbyQuery) (page *dealerscout.NearbyPage, err error) {
	defer func(begin time.Time) {
		count := 0
		if page != nil {
			count = len(page.PlaceIDs)
		}
		s.logger.Info("nearby search",
			"keyword", q.Keyword,
			"paged", q.PageToken != "",
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.NearbySearch(ctx, q)
}

// PlaceDetails delegates to the wrapped service and logs the operation.
func (s *LoggingPlacesService) PlaceDetails(ctx context.Context, placeID string) (detail *dealerscout.PlaceDetail, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("place details",
			"placeId", placeID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.PlaceDetails(ctx, placeID)
}
