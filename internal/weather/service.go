package weather

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Service binds a Source to the configured location and time zone.
type Service struct {
	source   Source
	location Location
	zone     *time.Location
	store    Store
}

// NewService creates a new Service. A nil zone keeps timestamps in UTC; a nil
// store disables recording of current conditions.
func NewService(source Source, loc Location, zone *time.Location, store Store) *Service {
	if zone == nil {
		zone = time.UTC
	}
	return &Service{
		source:   source,
		location: loc,
		zone:     zone,
		store:    store,
	}
}

// Location returns the location the service reports on.
func (s *Service) Location() Location {
	return s.location
}

// Current fetches the latest observation and records it in the store.
func (s *Service) Current(ctx context.Context) (Reading, error) {
	r, err := s.source.Current(ctx, s.location)
	if err != nil {
		log.Printf("ERROR: weather: %s current conditions failed for %s: %v", s.source.Name(), s.location.Key(), err)
		return Reading{}, err
	}
	r = s.localize(r)
	if s.store != nil {
		s.store.SaveReading(s.location, r)
	}
	return r, nil
}

// Daily fetches up to days daily forecast entries.
func (s *Service) Daily(ctx context.Context, days int) ([]Reading, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be greater than zero")
	}
	readings, err := s.source.Daily(ctx, s.location, days)
	if err != nil {
		log.Printf("ERROR: weather: %s daily forecast failed for %s: %v", s.source.Name(), s.location.Key(), err)
		return nil, err
	}
	return s.localizeAll(readings, days), nil
}

// ThreeHour fetches up to count three-hour forecast entries.
func (s *Service) ThreeHour(ctx context.Context, count int) ([]Reading, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be greater than zero")
	}
	readings, err := s.source.ThreeHour(ctx, s.location, count)
	if err != nil {
		log.Printf("ERROR: weather: %s three-hour forecast failed for %s: %v", s.source.Name(), s.location.Key(), err)
		return nil, err
	}
	return s.localizeAll(readings, count), nil
}

func (s *Service) localize(r Reading) Reading {
	if !r.Timestamp.IsZero() {
		r.Timestamp = r.Timestamp.In(s.zone)
	}
	return r
}

func (s *Service) localizeAll(readings []Reading, limit int) []Reading {
	if len(readings) > limit {
		readings = readings[:limit]
	}
	out := make([]Reading, len(readings))
	for i, r := range readings {
		out[i] = s.localize(r)
	}
	return out
}
