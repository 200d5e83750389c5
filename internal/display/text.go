package display

import (
	"image/color"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
)

// TomThumb is 3x5 with one row of descent, which fits the 8-pixel matrix.
var font = &tinyfont.TomThumb

const baseline = 6

// strip is an off-screen canvas wider than the matrix. It satisfies
// drivers.Displayer so tinyfont can draw into it.
type strip struct {
	w, h int16
	px   []palette.Color
}

var _ drivers.Displayer = (*strip)(nil)

func newStrip(w, h int, bg palette.Color) *strip {
	s := &strip{w: int16(w), h: int16(h), px: make([]palette.Color, w*h)}
	for i := range s.px {
		s.px[i] = bg
	}
	return s
}

func (s *strip) Size() (x, y int16) {
	return s.w, s.h
}

func (s *strip) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.px[int(y)*int(s.w)+int(x)] = palette.FromRGBA(c)
}

func (s *strip) Display() error {
	return nil
}

// window copies the 8x8 region starting at column off.
func (s *strip) window(off int) matrix.Frame {
	var f matrix.Frame
	for y := 0; y < matrix.Height; y++ {
		for x := 0; x < matrix.Width; x++ {
			col := off + x
			if col < 0 || col >= int(s.w) || y >= int(s.h) {
				continue
			}
			f[y*matrix.Width+x] = s.px[y*int(s.w)+col]
		}
	}
	return f
}

func textWidth(text string) int {
	_, outbox := tinyfont.LineWidth(font, text)
	return int(outbox)
}

// MessageFrames renders text and returns one frame per column of scroll,
// entering from the right edge and leaving on the left.
func MessageFrames(text string, fg, bg palette.Color) []matrix.Frame {
	w := textWidth(text) + 2*matrix.Width
	s := newStrip(w, matrix.Height, bg)
	tinyfont.WriteLine(s, font, matrix.Width, baseline, text, fg.RGBA())

	n := w - matrix.Width + 1
	frames := make([]matrix.Frame, 0, n)
	for off := 0; off < n; off++ {
		frames = append(frames, s.window(off))
	}
	return frames
}

// LetterFrame renders a single character centered on the matrix.
func LetterFrame(ch rune, fg, bg palette.Color) matrix.Frame {
	s := newStrip(matrix.Width, matrix.Height, bg)
	x := (matrix.Width - textWidth(string(ch))) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(s, font, int16(x), baseline, string(ch), fg.RGBA())
	return s.window(0)
}

// Scroll plays MessageFrames through show, one frame per speed.
func Scroll(text string, speed time.Duration, fg, bg palette.Color, show func(matrix.Frame)) {
	for _, f := range MessageFrames(text, fg, bg) {
		show(f)
		if speed > 0 {
			time.Sleep(speed)
		}
	}
}
