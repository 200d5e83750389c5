package menu

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/sense-weather/internal/display"
	"github.com/i474232898/sense-weather/internal/hud"
	"github.com/i474232898/sense-weather/internal/input"
	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
	"github.com/i474232898/sense-weather/internal/sensor"
	"github.com/i474232898/sense-weather/internal/weather"
)

// StatusSink receives everything the controller shows or swallows.
type StatusSink interface {
	SetMode(mode string, cursor int, session string)
	SetFrame(f matrix.Frame)
	RecordError(mode string, err error)
}

type nopSink struct{}

func (nopSink) SetMode(string, int, string) {}
func (nopSink) SetFrame(matrix.Frame)       {}
func (nopSink) RecordError(string, error)   {}

// Config controls the menu layout and the startup greeting.
type Config struct {
	Slots        int
	DefaultIndex int
	Welcome      bool
	Version      string
	LetterPause  time.Duration
	ScrollSpeed  time.Duration
}

// Controller runs the state machine. It is not safe for concurrent use;
// other goroutines talk to it through the input queue and the status sink.
type Controller struct {
	cfg   Config
	input input.Source
	out   display.Output
	modes map[Mode]*hud.Mode
	slots []Mode
	sink  StatusSink

	state   State
	buf     *matrix.Buffer
	welcome bool
	session string
}

// NewController creates a controller sitting on the menu. Slots without a
// registered mode are shown but cannot be opened.
func NewController(cfg Config, src input.Source, out display.Output, modes map[Mode]*hud.Mode, sink StatusSink) *Controller {
	if cfg.Slots <= 0 || cfg.Slots > matrix.Width {
		cfg.Slots = len(DefaultSlots)
	}
	cursor := cfg.DefaultIndex
	if cursor < 0 || cursor >= cfg.Slots {
		cursor = 0
	}
	slots := DefaultSlots
	if len(slots) > cfg.Slots {
		slots = slots[:cfg.Slots]
	}
	if sink == nil {
		sink = nopSink{}
	}
	return &Controller{
		cfg:   cfg,
		input: src,
		out:   out,
		modes: modes,
		slots: slots,
		sink:  sink,
		state: State{Cursor: cursor, Active: Menu},
		buf:   &matrix.Buffer{},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Start plays the welcome sequence, or draws the menu when it is disabled.
func (c *Controller) Start() {
	if !c.cfg.Welcome {
		c.showMenu()
		return
	}
	for i, ch := range "Welcome" {
		c.out.ShowLetter(ch, rainbow[i%len(rainbow)], palette.Black)
		time.Sleep(c.cfg.LetterPause)
	}
	c.out.ShowMessage(" to ", c.cfg.ScrollSpeed, palette.White, palette.Black)
	c.out.ShowMessage("sWEATHER v"+c.cfg.Version+"!", c.cfg.ScrollSpeed, palette.NeutralWhite, palette.Black)

	c.buf.Load(welcomeScreen)
	c.flush()
	c.welcome = true
	c.publishState()
}

// Run starts the controller and steps it every poll until ctx is done.
func (c *Controller) Run(ctx context.Context, poll time.Duration) error {
	c.Start()

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("INFO: menu: stopping")
			c.out.Clear()
			return nil
		case <-ticker.C:
			c.Step(ctx)
		}
	}
}

// Step handles pending input and then gives the active mode a chance to
// refresh.
func (c *Controller) Step(ctx context.Context) {
	for _, ev := range c.input.Poll() {
		if ev.Action != input.Pressed {
			continue
		}
		c.dispatch(ctx, ev)
	}

	if c.state.Active == Menu {
		return
	}
	m := c.modes[c.state.Active]
	if m == nil {
		c.returnToMenu()
		return
	}
	if ran, err := m.Tick(ctx, c.buf, m.Elapsed()); ran {
		c.afterRefresh(m, err)
	}
}

func (c *Controller) dispatch(ctx context.Context, ev input.Event) {
	switch c.state.Active {
	case Menu:
		if c.welcome {
			c.welcome = false
			c.showMenu()
			return
		}
		switch ev.Direction {
		case input.Left:
			c.moveCursor(-1)
		case input.Right:
			c.moveCursor(1)
		case input.Middle:
			c.activate(ctx)
		}
	case OutdoorHud, IndoorHud, ThreeHourReadout, EightDayReadout:
		if ev.Direction == input.Up {
			c.returnToMenu()
		}
	default:
		log.Printf("ERROR: menu: unknown mode %s, returning to menu", c.state.Active)
		c.returnToMenu()
	}
}

func (c *Controller) moveCursor(delta int) {
	c.state.Cursor = wrap(c.state.Cursor, delta, c.cfg.Slots)
	c.showMenu()
}

func (c *Controller) activate(ctx context.Context) {
	if c.state.Cursor >= len(c.slots) {
		log.Printf("DEBUG: menu: slot %d is empty", c.state.Cursor)
		return
	}
	next := c.slots[c.state.Cursor]
	m := c.modes[next]
	if m == nil {
		log.Printf("DEBUG: menu: %s is not configured", next)
		return
	}

	c.state.Active = next
	c.session = uuid.NewString()
	log.Printf("INFO: menu: entering %s (session %s)", next, c.session)
	c.publishState()

	err := m.OnEnter(ctx, c.buf)
	c.afterRefresh(m, err)
	if m.OneShot() && c.state.Active == next {
		c.returnToMenu()
	}
}

// afterRefresh handles a fetch outcome at the mode boundary. Only a sensor
// failure leaves the mode.
func (c *Controller) afterRefresh(m *hud.Mode, err error) {
	switch {
	case err == nil:
	case errors.Is(err, weather.ErrUnknownConditionCode):
		log.Printf("ERROR: menu: %s: %v", m.Name(), err)
		c.sink.RecordError(m.Name(), err)
	case errors.Is(err, sensor.ErrSensorRead):
		log.Printf("ERROR: menu: %s: %v, returning to menu", m.Name(), err)
		c.sink.RecordError(m.Name(), err)
		c.returnToMenu()
		return
	default:
		log.Printf("ERROR: menu: %s: refresh failed, keeping last frame: %v", m.Name(), err)
		c.sink.RecordError(m.Name(), err)
	}
	if !m.OneShot() {
		c.flush()
	}
}

func (c *Controller) returnToMenu() {
	if c.state.Active != Menu {
		log.Printf("INFO: menu: leaving %s (session %s)", c.state.Active, c.session)
	}
	c.state.Active = Menu
	c.session = ""
	c.showMenu()
}

func (c *Controller) showMenu() {
	drawMenu(c.buf, c.state.Cursor, c.slots)
	c.flush()
	c.publishState()
}

func (c *Controller) flush() {
	f := c.buf.Frame()
	c.out.SetFrame(f)
	c.sink.SetFrame(f)
}

func (c *Controller) publishState() {
	c.sink.SetMode(c.state.Active.String(), c.state.Cursor, c.session)
}
