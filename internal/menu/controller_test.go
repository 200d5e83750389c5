package menu

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/i474232898/sense-weather/internal/hud"
	"github.com/i474232898/sense-weather/internal/input"
	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
	"github.com/i474232898/sense-weather/internal/sensor"
	"github.com/i474232898/sense-weather/internal/weather"
)

type fakeOutput struct {
	frame    matrix.Frame
	frames   int
	letters  []rune
	messages []string
}

func (f *fakeOutput) SetPixel(x, y int, c palette.Color) {}
func (f *fakeOutput) SetFrame(fr matrix.Frame) {
	f.frame = fr
	f.frames++
}
func (f *fakeOutput) Clear() { f.frame = matrix.Frame{} }
func (f *fakeOutput) ShowMessage(text string, speed time.Duration, fg, bg palette.Color) {
	f.messages = append(f.messages, text)
}
func (f *fakeOutput) ShowLetter(ch rune, fg, bg palette.Color) {
	f.letters = append(f.letters, ch)
}

type fakeSink struct {
	mode    string
	session string
	errs    []error
}

func (s *fakeSink) SetMode(mode string, cursor int, session string) {
	s.mode = mode
	s.session = session
}
func (s *fakeSink) SetFrame(f matrix.Frame) {}
func (s *fakeSink) RecordError(mode string, err error) {
	s.errs = append(s.errs, err)
}

// stubRenderer paints the whole frame c, or fails with err.
type stubRenderer struct {
	c     palette.Color
	err   error
	calls int
}

func (r *stubRenderer) Refresh(ctx context.Context, buf *matrix.Buffer) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	buf.Fill(r.c)
	return nil
}

type harness struct {
	queue *input.Queue
	out   *fakeOutput
	sink  *fakeSink
	ctrl  *Controller
}

func newHarness(t *testing.T, modes map[Mode]*hud.Mode) *harness {
	t.Helper()
	h := &harness{queue: input.NewQueue(16), out: &fakeOutput{}, sink: &fakeSink{}}
	h.ctrl = NewController(Config{Slots: 4}, h.queue, h.out, modes, h.sink)
	h.ctrl.Start()
	return h
}

func (h *harness) press(dirs ...input.Direction) {
	for _, d := range dirs {
		h.queue.Push(input.Press(d))
	}
	h.ctrl.Step(context.Background())
}

func TestCursorWrapsBothWays(t *testing.T) {
	h := newHarness(t, nil)

	h.press(input.Left)
	if got := h.ctrl.State().Cursor; got != 3 {
		t.Fatalf("expected cursor 3 after left from 0, got %d", got)
	}
	h.press(input.Right)
	if got := h.ctrl.State().Cursor; got != 0 {
		t.Fatalf("expected cursor 0 after right from 3, got %d", got)
	}
	h.press(input.Right, input.Right)
	if got := h.ctrl.State().Cursor; got != 2 {
		t.Fatalf("expected cursor 2, got %d", got)
	}
}

func TestMenuScreenShowsCursorAndGlyph(t *testing.T) {
	h := newHarness(t, nil)
	h.press(input.Right)

	b := matrix.NewBuffer(h.out.frame)
	if got := b.Get(1, 0); got != palette.Grey {
		t.Fatalf("expected grey cursor at (1,0), got %v", got)
	}
	if got := b.Get(0, 0); got != palette.White {
		t.Fatalf("expected bar color at (0,0), got %v", got)
	}
	// "IH": the I stem sits at (1,2) in the slot's bar color.
	if got := b.Get(1, 2); got != palette.Red {
		t.Fatalf("expected red glyph at (1,2), got %v", got)
	}
}

func TestModeRoundTripPreservesCursor(t *testing.T) {
	r := &stubRenderer{c: palette.Blue}
	h := newHarness(t, map[Mode]*hud.Mode{
		IndoorHud: hud.NewMode("indoor", time.Minute, r),
	})

	h.press(input.Right, input.Middle)
	if got := h.ctrl.State().Active; got != IndoorHud {
		t.Fatalf("expected indoor mode, got %s", got)
	}
	if r.calls != 1 {
		t.Fatalf("expected one fetch on entry, got %d", r.calls)
	}
	if h.out.frame[0] != palette.Blue {
		t.Fatalf("expected mode frame on display")
	}
	if h.sink.session == "" || h.sink.mode != "indoor" {
		t.Fatalf("expected session for indoor mode, got %+v", h.sink)
	}

	h.press(input.Up)
	st := h.ctrl.State()
	if st.Active != Menu || st.Cursor != 1 {
		t.Fatalf("expected menu with cursor 1, got %+v", st)
	}
	if matrix.NewBuffer(h.out.frame).Get(1, 0) != palette.Grey {
		t.Fatalf("expected cursor indicator restored")
	}
	if h.sink.session != "" {
		t.Fatalf("expected session cleared on return")
	}
}

func TestIgnoredEvents(t *testing.T) {
	r := &stubRenderer{c: palette.Blue}
	h := newHarness(t, map[Mode]*hud.Mode{
		OutdoorHud: hud.NewMode("outdoor", time.Minute, r),
	})

	h.press(input.Up, input.Down)
	if st := h.ctrl.State(); st.Active != Menu || st.Cursor != 0 {
		t.Fatalf("up/down should be ignored in menu, got %+v", st)
	}

	h.queue.Push(input.Event{Direction: input.Right, Action: input.Released})
	h.ctrl.Step(context.Background())
	if h.ctrl.State().Cursor != 0 {
		t.Fatalf("released events should be ignored")
	}

	h.press(input.Middle, input.Left, input.Right, input.Middle)
	if st := h.ctrl.State(); st.Active != OutdoorHud || st.Cursor != 0 {
		t.Fatalf("only up should leave a mode, got %+v", st)
	}
}

func TestEmptySlotIsIgnored(t *testing.T) {
	h := newHarness(t, map[Mode]*hud.Mode{})
	h.press(input.Middle)
	if h.ctrl.State().Active != Menu {
		t.Fatalf("expected to stay on menu")
	}
}

func TestSensorErrorReturnsToMenu(t *testing.T) {
	r := &stubRenderer{err: fmt.Errorf("%w: i2c timeout", sensor.ErrSensorRead)}
	h := newHarness(t, map[Mode]*hud.Mode{
		IndoorHud: hud.NewMode("indoor", time.Minute, r),
	})

	h.press(input.Right, input.Middle)
	st := h.ctrl.State()
	if st.Active != Menu || st.Cursor != 1 {
		t.Fatalf("expected menu with cursor preserved, got %+v", st)
	}
	if len(h.sink.errs) != 1 {
		t.Fatalf("expected error recorded, got %d", len(h.sink.errs))
	}
}

func TestSourceUnavailableStaysInMode(t *testing.T) {
	r := &stubRenderer{c: palette.Green}
	now := time.Unix(0, 0)
	m := hud.NewMode("outdoor", time.Minute, r).WithClock(func() time.Time { return now })
	h := newHarness(t, map[Mode]*hud.Mode{OutdoorHud: m})

	h.press(input.Middle)
	r.err = weather.ErrSourceUnavailable
	now = now.Add(time.Minute)
	h.ctrl.Step(context.Background())

	if h.ctrl.State().Active != OutdoorHud {
		t.Fatalf("expected to stay in outdoor mode")
	}
	if r.calls != 2 {
		t.Fatalf("expected a refresh attempt, got %d calls", r.calls)
	}
	if h.out.frame[0] != palette.Green {
		t.Fatalf("expected last good frame to stay on screen")
	}
	if len(h.sink.errs) != 1 || !errors.Is(h.sink.errs[0], weather.ErrSourceUnavailable) {
		t.Fatalf("expected source error recorded, got %v", h.sink.errs)
	}
}

func TestOneShotReturnsToMenu(t *testing.T) {
	r := &stubRenderer{}
	h := newHarness(t, map[Mode]*hud.Mode{
		EightDayReadout: hud.NewMode("8d", 0, r),
	})

	h.press(input.Left, input.Middle)
	if st := h.ctrl.State(); st.Active != Menu || st.Cursor != 3 {
		t.Fatalf("expected menu after readout, got %+v", st)
	}
	if r.calls != 1 {
		t.Fatalf("expected one fetch, got %d", r.calls)
	}
}

func TestWelcomeThenFirstEventRevealsMenu(t *testing.T) {
	q := input.NewQueue(4)
	out := &fakeOutput{}
	c := NewController(Config{Slots: 4, DefaultIndex: 2, Welcome: true, Version: "1.0.0"}, q, out, nil, nil)
	c.Start()

	if string(out.letters) != "Welcome" {
		t.Fatalf("expected welcome letters, got %q", string(out.letters))
	}
	if len(out.messages) != 2 || out.messages[1] != "sWEATHER v1.0.0!" {
		t.Fatalf("unexpected messages %q", out.messages)
	}
	if out.frame != welcomeScreen {
		t.Fatalf("expected welcome screen")
	}

	q.Push(input.Press(input.Right))
	c.Step(context.Background())
	if c.State().Cursor != 2 {
		t.Fatalf("first event should not move the cursor, got %d", c.State().Cursor)
	}
	if matrix.NewBuffer(out.frame).Get(2, 0) != palette.Grey {
		t.Fatalf("expected menu with cursor at 2")
	}
}

func TestModeString(t *testing.T) {
	if Mode(42).String() != "mode(42)" {
		t.Fatalf("unexpected name for unknown mode: %s", Mode(42))
	}
	if ThreeHourReadout.String() != "3h-readout" {
		t.Fatalf("unexpected name %s", ThreeHourReadout)
	}
}

func TestReturnHandledBeforeDueRefresh(t *testing.T) {
	r := &stubRenderer{c: palette.Green}
	now := time.Unix(0, 0)
	m := hud.NewMode("outdoor", time.Minute, r).WithClock(func() time.Time { return now })
	h := newHarness(t, map[Mode]*hud.Mode{OutdoorHud: m})

	h.press(input.Middle)
	now = now.Add(2 * time.Minute)
	h.press(input.Up)

	if r.calls != 1 {
		t.Fatalf("expected only the entry fetch, got %d calls", r.calls)
	}
	if st := h.ctrl.State(); st.Active != Menu || st.Cursor != 0 {
		t.Fatalf("expected menu with cursor 0, got %+v", st)
	}
}
