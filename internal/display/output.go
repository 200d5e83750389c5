// Package display drives the physical (or emulated) 8x8 LED matrix.
package display

import (
	"time"

	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
)

// Output is an 8x8 matrix driver. Calls are fire-and-forget; drivers log
// their own failures.
type Output interface {
	SetPixel(x, y int, c palette.Color)
	SetFrame(f matrix.Frame)
	Clear()
	// ShowMessage scrolls text across the matrix and returns once the last
	// column has left the screen.
	ShowMessage(text string, speed time.Duration, fg, bg palette.Color)
	ShowLetter(ch rune, fg, bg palette.Color)
}
