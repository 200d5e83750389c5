package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	evdev "github.com/holoplot/go-evdev"

	"github.com/i474232898/sense-weather/internal/common"
)

// eventReader yields one evdev event per call. *evdev.InputDevice satisfies
// it and decodes struct input_event in the host's native layout.
type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
}

// Joystick reads key events from an evdev device and pushes them into a
// Queue.
type Joystick struct {
	path  string
	queue *Queue
}

// NewJoystick creates a reader for the evdev device at path.
func NewJoystick(path string, queue *Queue) *Joystick {
	return &Joystick{path: path, queue: queue}
}

// FindJoystick scans sysfs for an input device whose name matches one of
// names and returns its /dev/input path.
func FindJoystick(sysfsRoot string, names ...string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(sysfsRoot, "class", "input", "event*", "device", "name"))
	if err != nil {
		return "", err
	}
	for _, m := range matches {
		data, err := os.ReadFile(m)
		if err != nil {
			continue
		}
		if common.HasAny(strings.TrimSpace(string(data)), names...) {
			event := filepath.Base(filepath.Dir(filepath.Dir(m)))
			return filepath.Join("/dev/input", event), nil
		}
	}
	return "", fmt.Errorf("no input device named %q", names)
}

// Run reads events until ctx is done or the device fails.
func (j *Joystick) Run(ctx context.Context) error {
	dev, err := evdev.Open(j.path)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		dev.Close()
	}()

	log.Printf("INFO: joystick: reading %s", j.path)
	err = j.read(dev)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (j *Joystick) read(r eventReader) error {
	for {
		raw, err := r.ReadOne()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		ev, ok := decode(raw)
		if !ok {
			continue
		}
		if !j.queue.Push(ev) {
			log.Printf("ERROR: joystick: queue full, dropped %s %s", ev.Direction, ev.Action)
		}
	}
}

func decode(raw *evdev.InputEvent) (Event, bool) {
	if raw == nil || raw.Type != evdev.EV_KEY {
		return Event{}, false
	}
	var ev Event
	switch raw.Code {
	case evdev.KEY_UP:
		ev.Direction = Up
	case evdev.KEY_DOWN:
		ev.Direction = Down
	case evdev.KEY_LEFT:
		ev.Direction = Left
	case evdev.KEY_RIGHT:
		ev.Direction = Right
	case evdev.KEY_ENTER:
		ev.Direction = Middle
	default:
		return Event{}, false
	}
	switch raw.Value {
	case 0:
		ev.Action = Released
	case 1:
		ev.Action = Pressed
	case 2:
		ev.Action = Held
	default:
		return Event{}, false
	}
	return ev, true
}
