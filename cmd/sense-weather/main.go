package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/sense-weather/internal/api/http"
	"github.com/i474232898/sense-weather/internal/config"
	"github.com/i474232898/sense-weather/internal/display"
	"github.com/i474232898/sense-weather/internal/display/emulator"
	"github.com/i474232898/sense-weather/internal/hud"
	"github.com/i474232898/sense-weather/internal/input"
	"github.com/i474232898/sense-weather/internal/menu"
	"github.com/i474232898/sense-weather/internal/sensor"
	"github.com/i474232898/sense-weather/internal/store"
	"github.com/i474232898/sense-weather/internal/weather"
	"github.com/i474232898/sense-weather/internal/weather/providers"
)

const (
	version        = "1.0.0"
	inputQueueSize = 32
	letterPause    = 400 * time.Millisecond
	welcomeSpeed   = 50 * time.Millisecond
	defaultLogFile = "sense-weather.log"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The emulator owns the terminal, so logs go to a file.
	logFile := cfg.LogFile
	if logFile == "" && cfg.Display == config.DisplayEmulator {
		logFile = defaultLogFile
	}
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "sense-weather")
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zone, err := cfg.Location()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	memStore := store.NewMemoryStore()

	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)
	service := weather.NewService(provider, weather.Location{ID: cfg.LocationID}, zone, memStore)

	queue := input.NewQueue(inputQueueSize)

	localSensor, closeSensor := openSensor(cfg)
	defer closeSensor()

	out, emu, closeDisplay := openDisplay(cfg, queue)
	defer closeDisplay()

	if cfg.Display == config.DisplayFramebuffer || cfg.JoystickDevice != "" {
		startJoystick(ctx, cfg, queue)
	}

	modes := map[menu.Mode]*hud.Mode{
		menu.OutdoorHud:       hud.NewMode(menu.OutdoorHud.String(), cfg.OutdoorRefresh, hud.NewOutdoor(service)),
		menu.IndoorHud:        hud.NewMode(menu.IndoorHud.String(), cfg.IndoorRefresh, hud.NewIndoor(localSensor)),
		menu.ThreeHourReadout: hud.NewMode(menu.ThreeHourReadout.String(), 0, hud.NewThreeHourReadout(service, out, cfg.ScrollSpeed)),
		menu.EightDayReadout:  hud.NewMode(menu.EightDayReadout.String(), 0, hud.NewEightDayReadout(service, out, cfg.ScrollSpeed)),
	}
	ctrl := menu.NewController(menu.Config{
		Slots:        cfg.MenuSlots,
		DefaultIndex: cfg.MenuDefaultIndex,
		Welcome:      cfg.ShowWelcome,
		Version:      version,
		LetterPause:  letterPause,
		ScrollSpeed:  welcomeSpeed,
	}, queue, out, modes, memStore)

	var app *fiber.App
	if cfg.APIEnabled {
		app = newApp(memStore, service.Location(), queue)
		go func() {
			if err := app.Listen(":" + cfg.Port); err != nil {
				log.Printf("ERROR: fiber server stopped: %v", err)
			}
		}()
	}

	ctrlDone := make(chan struct{})
	go func() {
		defer close(ctrlDone)
		if err := ctrl.Run(ctx, cfg.PollInterval); err != nil {
			log.Printf("ERROR: controller stopped: %v", err)
		}
	}()
	log.Printf("INFO: sense-weather %s started (display=%s sensor=%s)", version, cfg.Display, cfg.Sensor)

	if emu != nil {
		go func() {
			<-ctx.Done()
			emu.Quit()
		}()
		if err := emu.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			log.Printf("ERROR: emulator: %v", err)
		}
		// Quitting the emulator stops the appliance.
		stop()
	}

	<-ctx.Done()
	<-ctrlDone

	if app != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("ERROR: shutdown: %v", err)
		}
	}
}

func newApp(memStore *store.MemoryStore, loc weather.Location, queue *input.Queue) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "sense-weather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Request logs follow the standard logger, which may be a file.
	app.Use(logger.New(logger.Config{
		Output:        logWriter{},
		DisableColors: true,
	}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "sense-weather",
			"version": version,
		})
	})

	httpapi.RegisterRoutes(app, memStore, loc, queue)
	return app
}

// logWriter forwards to the standard logger's current output.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	return log.Writer().Write(p)
}

func openSensor(cfg *config.AppConfig) (sensor.Sensor, func()) {
	if cfg.Sensor == config.SensorBME280 {
		env, err := sensor.OpenBME280(cfg.I2CBus, cfg.I2CAddr)
		if err == nil {
			return env, func() {
				if err := env.Close(); err != nil {
					log.Printf("ERROR: sensor: close: %v", err)
				}
			}
		}
		log.Printf("ERROR: sensor: %v, using fixed readings", err)
	}
	return sensor.Fixed{TemperatureF: 68, HumidityPct: 45, PressureMb: 1013.25}, func() {}
}

func openDisplay(cfg *config.AppConfig, queue *input.Queue) (display.Output, *emulator.Emulator, func()) {
	switch cfg.Display {
	case config.DisplayEmulator:
		emu := emulator.New(queue, tea.WithAltScreen())
		return emu, emu, func() {}
	case config.DisplayFramebuffer:
		path := cfg.FramebufferDevice
		if path == "" {
			found, err := display.FindFramebuffer("/sys", "RPi-Sense FB")
			if err != nil {
				log.Fatalf("failed to find framebuffer: %v", err)
			}
			path = found
		}
		fb, err := display.OpenFramebuffer(path)
		if err != nil {
			log.Fatalf("failed to open framebuffer: %v", err)
		}
		log.Printf("INFO: display: framebuffer %s", path)
		return fb, nil, func() {
			if err := fb.Close(); err != nil {
				log.Printf("ERROR: display: close: %v", err)
			}
		}
	default:
		return &display.Headless{}, nil, func() {}
	}
}

func startJoystick(ctx context.Context, cfg *config.AppConfig, queue *input.Queue) {
	path := cfg.JoystickDevice
	if path == "" {
		found, err := input.FindJoystick("/sys", "Sense HAT Joystick")
		if err != nil {
			log.Printf("ERROR: joystick: %v", err)
			return
		}
		path = found
	}
	go func() {
		if err := input.NewJoystick(path, queue).Run(ctx); err != nil {
			log.Printf("ERROR: joystick: %v", err)
		}
	}()
}
