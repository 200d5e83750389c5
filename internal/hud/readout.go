package hud

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/i474232898/sense-weather/internal/display"
	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
	"github.com/i474232898/sense-weather/internal/weather"
)

const readoutEntries = 8

// Readout scrolls a text forecast across the display. It does not draw
// into the frame buffer.
type Readout struct {
	source Forecaster
	out    display.Output
	speed  time.Duration
	text   func(ctx context.Context, source Forecaster) (string, error)
}

// NewThreeHourReadout scrolls the current conditions followed by seven
// three-hour entries.
func NewThreeHourReadout(source Forecaster, out display.Output, speed time.Duration) *Readout {
	return &Readout{source: source, out: out, speed: speed, text: threeHourText}
}

// NewEightDayReadout scrolls eight daily entries.
func NewEightDayReadout(source Forecaster, out display.Output, speed time.Duration) *Readout {
	return &Readout{source: source, out: out, speed: speed, text: eightDayText}
}

func (r *Readout) Refresh(ctx context.Context, buf *matrix.Buffer) error {
	text, err := r.text(ctx, r.source)
	if err != nil {
		return err
	}
	r.out.ShowMessage(text, r.speed, palette.NeutralWhite, palette.Black)
	return nil
}

func threeHourText(ctx context.Context, source Forecaster) (string, error) {
	current, err := source.Current(ctx)
	if err != nil {
		return "", err
	}
	forecast, err := source.ThreeHour(ctx, readoutEntries-1)
	if err != nil {
		return "", err
	}
	return ThreeHourText(weather.Timeline(current, forecast, readoutEntries)), nil
}

func eightDayText(ctx context.Context, source Forecaster) (string, error) {
	daily, err := source.Daily(ctx, readoutEntries)
	if err != nil {
		return "", err
	}
	return EightDayText(daily), nil
}

// ThreeHourText formats each reading as "At HH:MM <description> - ".
func ThreeHourText(readings []weather.Reading) string {
	var b strings.Builder
	for _, r := range readings {
		fmt.Fprintf(&b, "At %s %s - ", r.Timestamp.Format("15:04"), r.Summary())
	}
	return b.String()
}

// EightDayText formats each reading as " For YYYY-MM-DD <description> - ".
func EightDayText(readings []weather.Reading) string {
	var b strings.Builder
	for _, r := range readings {
		fmt.Fprintf(&b, " For %s %s - ", r.Timestamp.Format("2006-01-02"), r.Summary())
	}
	return b.String()
}
