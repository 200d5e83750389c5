// Package input delivers discrete joystick events to the control loop.
package input

// Direction of a joystick event.
type Direction string

const (
	Left   Direction = "left"
	Right  Direction = "right"
	Up     Direction = "up"
	Down   Direction = "down"
	Middle Direction = "middle"
)

// Action of a joystick event.
type Action string

const (
	Pressed  Action = "pressed"
	Released Action = "released"
	Held     Action = "held"
)

// Event is a single joystick event.
type Event struct {
	Direction Direction `json:"direction"`
	Action    Action    `json:"action"`
}

// Press is shorthand for a pressed event in direction d.
func Press(d Direction) Event {
	return Event{Direction: d, Action: Pressed}
}

// Source yields pending events without blocking. An empty result is normal.
type Source interface {
	Poll() []Event
}
