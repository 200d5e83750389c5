package weather

import (
	"context"
	"errors"
)

var (
	// ErrSourceUnavailable is returned when the weather provider cannot be
	// reached, rejects the credentials, or sends an unreadable payload.
	ErrSourceUnavailable = errors.New("weather source unavailable")
	// ErrUnknownConditionCode is returned for codes missing from the table.
	ErrUnknownConditionCode = errors.New("unknown condition code")
)

// Source abstracts a weather provider (e.g. OpenWeatherMap).
type Source interface {
	Name() string
	Current(ctx context.Context, loc Location) (Reading, error)
	Daily(ctx context.Context, loc Location, days int) ([]Reading, error)
	ThreeHour(ctx context.Context, loc Location, count int) ([]Reading, error)
}

// Store keeps the most recent current-conditions reading for status views.
type Store interface {
	SaveReading(loc Location, r Reading)
}
