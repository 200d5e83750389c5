package display

import (
	"log"
	"time"

	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
)

// Headless keeps the current frame in memory and logs text output. It is
// used on hosts without a matrix; the frame is visible through the status
// API.
type Headless struct {
	frame matrix.Frame
}

func (h *Headless) SetPixel(x, y int, c palette.Color) {
	if x < 0 || x >= matrix.Width || y < 0 || y >= matrix.Height {
		return
	}
	h.frame[y*matrix.Width+x] = c
}

func (h *Headless) SetFrame(f matrix.Frame) {
	h.frame = f
}

func (h *Headless) Clear() {
	h.frame = matrix.Frame{}
}

func (h *Headless) ShowMessage(text string, speed time.Duration, fg, bg palette.Color) {
	log.Printf("INFO: display: message %q", text)
}

func (h *Headless) ShowLetter(ch rune, fg, bg palette.Color) {
	log.Printf("INFO: display: letter %q", ch)
}

// Frame returns the last frame written.
func (h *Headless) Frame() matrix.Frame {
	return h.frame
}
