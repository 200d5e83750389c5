// Package menu owns the appliance's state machine: the menu bar, the
// cursor and the mode currently on screen.
package menu

import "fmt"

// Mode is what the matrix is currently showing.
type Mode int

const (
	Menu Mode = iota
	OutdoorHud
	IndoorHud
	ThreeHourReadout
	EightDayReadout
)

func (m Mode) String() string {
	switch m {
	case Menu:
		return "menu"
	case OutdoorHud:
		return "outdoor"
	case IndoorHud:
		return "indoor"
	case ThreeHourReadout:
		return "3h-readout"
	case EightDayReadout:
		return "8d-readout"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// State is the controller's position in the state machine.
type State struct {
	Cursor int  `json:"cursor"`
	Active Mode `json:"-"`
}

// DefaultSlots binds menu bar positions to modes, left to right.
var DefaultSlots = []Mode{OutdoorHud, IndoorHud, ThreeHourReadout, EightDayReadout}

// wrap moves the cursor by delta over [0, n-1].
func wrap(cursor, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((cursor+delta)%n + n) % n
}
