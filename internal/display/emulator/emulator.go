package emulator

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/i474232898/sense-weather/internal/display"
	"github.com/i474232898/sense-weather/internal/input"
	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
)

// Emulator is a display.Output backed by a bubbletea program. Key presses
// are pushed onto the queue it was created with.
type Emulator struct {
	program *tea.Program
	done    atomic.Bool

	mu    sync.Mutex
	frame matrix.Frame
}

// New builds the emulator. Run must be called for frames to be drawn.
func New(queue *input.Queue, opts ...tea.ProgramOption) *Emulator {
	return &Emulator{program: tea.NewProgram(model{queue: queue}, opts...)}
}

// Run blocks until the user quits or Quit is called.
func (e *Emulator) Run() error {
	_, err := e.program.Run()
	e.done.Store(true)
	return err
}

// Quit stops the program.
func (e *Emulator) Quit() {
	if e.done.Load() {
		return
	}
	e.program.Quit()
}

// send drops messages once the program has exited.
func (e *Emulator) send(msg tea.Msg) {
	if e.done.Load() {
		return
	}
	e.program.Send(msg)
}

func (e *Emulator) publish(f matrix.Frame) {
	e.send(frameMsg(f))
}

func (e *Emulator) SetPixel(x, y int, c palette.Color) {
	if x < 0 || x >= matrix.Width || y < 0 || y >= matrix.Height {
		return
	}
	e.mu.Lock()
	e.frame[y*matrix.Width+x] = c
	f := e.frame
	e.mu.Unlock()
	e.publish(f)
}

func (e *Emulator) SetFrame(f matrix.Frame) {
	e.mu.Lock()
	e.frame = f
	e.mu.Unlock()
	e.publish(f)
}

func (e *Emulator) Clear() {
	e.SetFrame(matrix.Frame{})
}

func (e *Emulator) ShowMessage(text string, speed time.Duration, fg, bg palette.Color) {
	e.send(captionMsg(text))
	display.Scroll(text, speed, fg, bg, e.SetFrame)
	e.send(captionMsg(""))
}

func (e *Emulator) ShowLetter(ch rune, fg, bg palette.Color) {
	e.SetFrame(display.LetterFrame(ch, fg, bg))
}

// Frame returns the last frame written.
func (e *Emulator) Frame() matrix.Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}
