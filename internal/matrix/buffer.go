// Package matrix holds the in-memory frame for the 8x8 LED matrix.
package matrix

import "github.com/i474232898/sense-weather/internal/palette"

const (
	// Width and Height of the LED matrix.
	Width  = 8
	Height = 8
	// Pixels is the number of cells in a frame.
	Pixels = Width * Height
)

// Frame is a row-major snapshot of every pixel.
type Frame [Pixels]palette.Color

// Buffer is an 8x8 grid of colors. The zero value is a black frame.
// Coordinates outside the grid are ignored.
type Buffer struct {
	px Frame
}

// NewBuffer returns a buffer initialized from f.
func NewBuffer(f Frame) *Buffer {
	return &Buffer{px: f}
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Set paints a single pixel.
func (b *Buffer) Set(x, y int, c palette.Color) {
	if !inBounds(x, y) {
		return
	}
	b.px[y*Width+x] = c
}

// Get returns the color at (x, y), or black outside the grid.
func (b *Buffer) Get(x, y int) palette.Color {
	if !inBounds(x, y) {
		return palette.Black
	}
	return b.px[y*Width+x]
}

// Fill paints every pixel.
func (b *Buffer) Fill(c palette.Color) {
	for i := range b.px {
		b.px[i] = c
	}
}

// Clear blacks out the buffer.
func (b *Buffer) Clear() {
	b.Fill(palette.Black)
}

// FillBlank paints every black pixel with c.
func (b *Buffer) FillBlank(c palette.Color) {
	for i, p := range b.px {
		if p == palette.Black {
			b.px[i] = c
		}
	}
}

// Row paints the first n pixels of row y with c and the rest with rest.
func (b *Buffer) Row(y, n int, c, rest palette.Color) {
	for x := 0; x < Width; x++ {
		if x < n {
			b.Set(x, y, c)
		} else {
			b.Set(x, y, rest)
		}
	}
}

// Frame returns a copy of the pixels.
func (b *Buffer) Frame() Frame {
	return b.px
}

// Load replaces the pixels with f.
func (b *Buffer) Load(f Frame) {
	b.px = f
}
