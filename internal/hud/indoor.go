package hud

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
	"github.com/i474232898/sense-weather/internal/sensor"
)

const barWidth = 2

// Indoor draws local temperature, pressure and humidity as three bars
// growing from the bottom edge.
type Indoor struct {
	sensor sensor.Sensor
}

func NewIndoor(s sensor.Sensor) *Indoor {
	return &Indoor{sensor: s}
}

func (in *Indoor) Refresh(ctx context.Context, buf *matrix.Buffer) error {
	temp, err := in.sensor.ReadTemperature()
	if err != nil {
		return sensorErr("temperature", err)
	}
	pres, err := in.sensor.ReadPressure()
	if err != nil {
		return sensorErr("pressure", err)
	}
	hum, err := in.sensor.ReadHumidity()
	if err != nil {
		return sensorErr("humidity", err)
	}

	for name, v := range map[string]float64{"temperature": temp, "pressure": pres, "humidity": hum} {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: %s is not a number", sensor.ErrSensorRead, name)
		}
	}

	buf.Clear()
	drawBar(buf, 0, BarHeight(temp, TemperatureMin, TemperatureMax), palette.BarTemperature)
	drawBar(buf, 3, BarHeight(pres, PressureMin, PressureMax), palette.BarPressure)
	drawBar(buf, 6, BarHeight(hum, HumidityMin, HumidityMax), palette.BarHumidity)
	buf.FillBlank(palette.Fallback)
	return nil
}

// BarHeight clamps v to [min, max] and scales it to a bar of 0-8 pixels,
// rounding half to even. NaN gives an empty bar.
func BarHeight(v, min, max float64) int {
	if math.IsNaN(v) {
		return 0
	}
	scaled := palette.Scale(palette.Clamp(v, min, max), min, max, 0, matrix.Height)
	return int(math.RoundToEven(scaled))
}

func drawBar(buf *matrix.Buffer, x, height int, c palette.Color) {
	for y := matrix.Height - height; y < matrix.Height; y++ {
		for dx := 0; dx < barWidth; dx++ {
			buf.Set(x+dx, y, c)
		}
	}
}

func sensorErr(what string, err error) error {
	if errors.Is(err, sensor.ErrSensorRead) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", sensor.ErrSensorRead, what, err)
}
