package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Display backends.
const (
	DisplayEmulator    = "emulator"
	DisplayFramebuffer = "framebuffer"
	DisplayHeadless    = "headless"
)

// Sensor backends.
const (
	SensorBME280 = "bme280"
	SensorFixed  = "fixed"
)

type AppConfig struct {
	OpenWeatherAPIKey string
	LocationID        int    `validate:"gt=0"`
	Timezone          string `validate:"required"`

	HTTPTimeout time.Duration `validate:"gt=0"`

	OutdoorRefresh time.Duration `validate:"gt=0"`
	IndoorRefresh  time.Duration `validate:"gt=0"`

	MenuSlots        int           `validate:"gte=1,lte=8"`
	MenuDefaultIndex int           `validate:"gte=0,ltfield=MenuSlots"`
	PollInterval     time.Duration `validate:"gt=0"`
	ScrollSpeed      time.Duration `validate:"gte=0"`
	ShowWelcome      bool

	Display           string `validate:"oneof=emulator framebuffer headless"`
	FramebufferDevice string
	JoystickDevice    string

	Sensor  string `validate:"oneof=bme280 fixed"`
	I2CBus  string
	I2CAddr uint16

	Port       string `validate:"required,numeric"`
	APIEnabled bool
	LogFile    string
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}
	var err error

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.LocationID = getenvInt("WEATHER_LOCATION_ID", 4975802)
	cfg.Timezone = getenvDefault("WEATHER_TIMEZONE", "America/New_York")

	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	if cfg.OutdoorRefresh, err = getenvDuration("OUTDOOR_REFRESH", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.IndoorRefresh, err = getenvDuration("INDOOR_REFRESH", time.Minute); err != nil {
		return nil, err
	}

	cfg.MenuSlots = getenvInt("MENU_SLOTS", 4)
	cfg.MenuDefaultIndex = getenvInt("MENU_DEFAULT_INDEX", 0)
	if cfg.PollInterval, err = getenvDuration("POLL_INTERVAL", 50*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.ScrollSpeed, err = getenvDuration("SCROLL_SPEED", 35*time.Millisecond); err != nil {
		return nil, err
	}
	cfg.ShowWelcome = getenvBool("SHOW_WELCOME", true)

	cfg.Display = strings.ToLower(getenvDefault("MATRIX_DISPLAY", DisplayEmulator))
	cfg.FramebufferDevice = os.Getenv("FRAMEBUFFER_DEVICE")
	cfg.JoystickDevice = os.Getenv("JOYSTICK_DEVICE")

	cfg.Sensor = strings.ToLower(getenvDefault("SENSOR", SensorFixed))
	cfg.I2CBus = getenvDefault("I2C_BUS", "1")
	addr, err := strconv.ParseUint(getenvDefault("I2C_ADDR", "0x77"), 0, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid I2C_ADDR: %w", err)
	}
	cfg.I2CAddr = uint16(addr)

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.APIEnabled = getenvBool("API_ENABLED", true)
	cfg.LogFile = os.Getenv("LOG_FILE")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Location loads the configured time zone.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_TIMEZONE: %w", err)
	}
	return loc, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
