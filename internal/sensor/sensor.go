// Package sensor reads the appliance's local temperature, humidity and
// pressure sensors.
package sensor

import (
	"errors"
)

// ErrSensorRead is returned when a local sensor cannot be read.
var ErrSensorRead = errors.New("sensor read failed")

// Sensor is a local environmental sensor. Temperature is in Fahrenheit,
// humidity in percent and pressure in millibars.
type Sensor interface {
	ReadTemperature() (float64, error)
	ReadHumidity() (float64, error)
	ReadPressure() (float64, error)
}

// Fixed reports constant values. It stands in for hardware when the
// appliance runs on a development host.
type Fixed struct {
	TemperatureF float64
	HumidityPct  float64
	PressureMb   float64
}

func (f Fixed) ReadTemperature() (float64, error) { return f.TemperatureF, nil }
func (f Fixed) ReadHumidity() (float64, error)    { return f.HumidityPct, nil }
func (f Fixed) ReadPressure() (float64, error)    { return f.PressureMb, nil }
