package display

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/i474232898/sense-weather/internal/common"
	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
)

// Framebuffer drives an 8x8 RGB565 framebuffer such as the Sense HAT's
// /dev/fb1.
type Framebuffer struct {
	w     io.WriterAt
	close func() error
	frame matrix.Frame
	buf   []byte
}

// NewFramebuffer wraps an already opened framebuffer device.
func NewFramebuffer(w io.WriterAt) *Framebuffer {
	return &Framebuffer{w: w, buf: make([]byte, matrix.Pixels*2)}
}

// OpenFramebuffer opens the device at path for writing.
func OpenFramebuffer(path string) (*Framebuffer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	fb := NewFramebuffer(f)
	fb.close = f.Close
	return fb, nil
}

// FindFramebuffer scans sysfs for a framebuffer whose name matches one of
// names and returns its /dev path.
func FindFramebuffer(sysfsRoot string, names ...string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(sysfsRoot, "class", "graphics", "fb*", "name"))
	if err != nil {
		return "", err
	}
	for _, m := range matches {
		data, err := os.ReadFile(m)
		if err != nil {
			continue
		}
		if common.HasAny(strings.TrimSpace(string(data)), names...) {
			return filepath.Join("/dev", filepath.Base(filepath.Dir(m))), nil
		}
	}
	return "", fmt.Errorf("no framebuffer named %q", names)
}

func rgb565(c palette.Color) uint16 {
	r := uint16(c.R>>3) & 0x1F
	g := uint16(c.G>>2) & 0x3F
	b := uint16(c.B>>3) & 0x1F
	return (r << 11) | (g << 5) | b
}

func (f *Framebuffer) flush() {
	for i, c := range f.frame {
		binary.LittleEndian.PutUint16(f.buf[i*2:], rgb565(c))
	}
	if _, err := f.w.WriteAt(f.buf, 0); err != nil {
		log.Printf("ERROR: framebuffer: write failed: %v", err)
	}
}

func (f *Framebuffer) SetPixel(x, y int, c palette.Color) {
	if x < 0 || x >= matrix.Width || y < 0 || y >= matrix.Height {
		return
	}
	f.frame[y*matrix.Width+x] = c
	f.flush()
}

func (f *Framebuffer) SetFrame(frame matrix.Frame) {
	f.frame = frame
	f.flush()
}

func (f *Framebuffer) Clear() {
	f.SetFrame(matrix.Frame{})
}

func (f *Framebuffer) ShowMessage(text string, speed time.Duration, fg, bg palette.Color) {
	Scroll(text, speed, fg, bg, f.SetFrame)
}

func (f *Framebuffer) ShowLetter(ch rune, fg, bg palette.Color) {
	f.SetFrame(LetterFrame(ch, fg, bg))
}

// Close blanks the matrix and releases the device.
func (f *Framebuffer) Close() error {
	f.Clear()
	if f.close == nil {
		return nil
	}
	return f.close()
}
