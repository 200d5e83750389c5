package hud

import (
	"context"
	"errors"
	"math"

	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
	"github.com/i474232898/sense-weather/internal/weather"
)

const (
	dailyDays      = 8
	threeHourCount = 7
)

// Gauge domains.
const (
	TemperatureMin = 0.0
	TemperatureMax = 100.0
	HumidityMin    = 0.0
	HumidityMax    = 100.0
	PressureMin    = 950.0
	PressureMax    = 1050.0
)

// Forecaster is the subset of weather.Service the renderers use.
type Forecaster interface {
	Current(ctx context.Context) (weather.Reading, error)
	Daily(ctx context.Context, days int) ([]weather.Reading, error)
	ThreeHour(ctx context.Context, count int) ([]weather.Reading, error)
}

// Outdoor draws the forecast overview:
//
//	rows 0-1  daily condition colors, today first
//	rows 2-3  current conditions at x=0, three-hour forecast after it
//	row  4    temperature bucket for the same columns
//	rows 5-7  gauges for current temperature, humidity and pressure
type Outdoor struct {
	source Forecaster
}

func NewOutdoor(source Forecaster) *Outdoor {
	return &Outdoor{source: source}
}

func (o *Outdoor) Refresh(ctx context.Context, buf *matrix.Buffer) error {
	daily, err := o.source.Daily(ctx, dailyDays)
	if err != nil {
		return err
	}
	current, err := o.source.Current(ctx)
	if err != nil {
		return err
	}
	threeHour, err := o.source.ThreeHour(ctx, threeHourCount)
	if err != nil {
		return err
	}

	var unknown []error
	conditionColor := func(code int) palette.Color {
		c, err := weather.Lookup(code)
		if err != nil {
			unknown = append(unknown, err)
		}
		return c.Color
	}

	// Rows 0-4 are only partly drawn when the source returns short lists.
	for y := 0; y <= 4; y++ {
		buf.Row(y, 0, palette.Black, palette.Black)
	}

	for x, r := range daily {
		if x >= matrix.Width {
			break
		}
		c := conditionColor(r.Code)
		buf.Set(x, 0, c)
		buf.Set(x, 1, c)
	}

	for x, r := range weather.Timeline(current, threeHour, matrix.Width) {
		c := conditionColor(r.Code)
		buf.Set(x, 2, c)
		buf.Set(x, 3, c)
		buf.Set(x, 4, palette.ForTemperature(r.TemperatureF))
	}

	temp := palette.Clamp(current.TemperatureF, TemperatureMin, TemperatureMax)
	DrawGauge(buf, 5, temp, TemperatureMin, TemperatureMax, palette.ForTemperature(temp))
	DrawGauge(buf, 6, current.HumidityPct, HumidityMin, HumidityMax, palette.ForHumidity(current.HumidityPct))
	DrawGauge(buf, 7, current.PressureMb, PressureMin, PressureMax, palette.ForPressure(current.PressureMb))

	return errors.Join(unknown...)
}

// GaugePixels returns how many of the row's pixels a value lights: one per
// eighth of the domain, rounded down.
func GaugePixels(v, min, max float64) int {
	v = palette.Clamp(v, min, max)
	step := (max - min) / matrix.Width
	n := int(math.Floor((v - min) / step))
	if n > matrix.Width {
		n = matrix.Width
	}
	return n
}

// DrawGauge fills row y from the left in c and the remainder in the
// fallback color.
func DrawGauge(buf *matrix.Buffer, y int, v, min, max float64, c palette.Color) {
	buf.Row(y, GaugePixels(v, min, max), c, palette.Fallback)
}
