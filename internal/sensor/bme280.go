package sensor

import (
	"fmt"
	"log"
	"strconv"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/bmxx80"
	"periph.io/x/host/v3"
)

// Env reads every metric from a periph environmental sensor on each call.
type Env struct {
	dev physic.SenseEnv
	bus i2c.BusCloser
}

// NewEnv wraps an already opened periph sensor.
func NewEnv(dev physic.SenseEnv) *Env {
	return &Env{dev: dev}
}

// OpenBME280 initializes the host drivers and opens a BME280 at addr on the
// named I2C bus ("1" on a Raspberry Pi).
func OpenBME280(busName string, addr uint16) (*Env, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("%w: host init: %v", ErrSensorRead, err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("%w: open i2c bus %s: %v", ErrSensorRead, busName, err)
	}
	dev, err := bmxx80.NewI2C(bus, addr, &bmxx80.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("%w: bme280 at 0x%s: %v", ErrSensorRead, strconv.FormatUint(uint64(addr), 16), err)
	}
	log.Printf("INFO: sensor: %s on i2c bus %s", dev, busName)
	return &Env{dev: dev, bus: bus}, nil
}

func (e *Env) sense() (physic.Env, error) {
	var env physic.Env
	if err := e.dev.Sense(&env); err != nil {
		return env, fmt.Errorf("%w: %v", ErrSensorRead, err)
	}
	return env, nil
}

// ReadTemperature returns the temperature in Fahrenheit.
func (e *Env) ReadTemperature() (float64, error) {
	env, err := e.sense()
	if err != nil {
		return 0, err
	}
	return env.Temperature.Fahrenheit(), nil
}

// ReadHumidity returns the relative humidity in percent.
func (e *Env) ReadHumidity() (float64, error) {
	env, err := e.sense()
	if err != nil {
		return 0, err
	}
	return float64(env.Humidity) / float64(physic.PercentRH), nil
}

// ReadPressure returns the pressure in millibars.
func (e *Env) ReadPressure() (float64, error) {
	env, err := e.sense()
	if err != nil {
		return 0, err
	}
	return float64(env.Pressure) / float64(100*physic.Pascal), nil
}

// Close halts the sensor and releases the bus.
func (e *Env) Close() error {
	err := e.dev.Halt()
	if e.bus != nil {
		if cerr := e.bus.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
