// Package hud implements the display modes reachable from the menu and the
// refresh cadence each of them runs on.
package hud

import (
	"context"
	"errors"
	"time"

	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/weather"
)

// Renderer draws one refresh of a mode. It writes into buf only; buf is
// discarded when an error other than an unknown condition code is returned.
type Renderer interface {
	Refresh(ctx context.Context, buf *matrix.Buffer) error
}

// RefreshTimer tracks the time since a mode last fetched. An interval of
// zero marks a one-shot mode that only fetches on entry.
type RefreshTimer struct {
	interval time.Duration
	last     time.Time
}

func NewRefreshTimer(interval time.Duration) *RefreshTimer {
	return &RefreshTimer{interval: interval}
}

// Reset restarts the timer at now.
func (t *RefreshTimer) Reset(now time.Time) {
	t.last = now
}

// Elapsed reports the time since the last Reset.
func (t *RefreshTimer) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.last)
}

// Due reports whether elapsed has reached the interval.
func (t *RefreshTimer) Due(elapsed time.Duration) bool {
	return t.interval > 0 && elapsed >= t.interval
}

// Mode binds a renderer to its refresh timer and keeps the last frame it
// drew successfully.
type Mode struct {
	name     string
	renderer Renderer
	timer    *RefreshTimer
	now      func() time.Time
	cache    *matrix.Frame
}

// NewMode creates a mode refreshing every interval. Zero means one-shot.
func NewMode(name string, interval time.Duration, r Renderer) *Mode {
	return &Mode{
		name:     name,
		renderer: r,
		timer:    NewRefreshTimer(interval),
		now:      time.Now,
	}
}

// WithClock replaces the wall clock, mainly for tests.
func (m *Mode) WithClock(now func() time.Time) *Mode {
	m.now = now
	return m
}

func (m *Mode) Name() string {
	return m.name
}

// OneShot reports whether the mode returns to the menu after entry.
func (m *Mode) OneShot() bool {
	return m.timer.interval == 0
}

// Elapsed reports the time since the last fetch attempt.
func (m *Mode) Elapsed() time.Duration {
	return m.timer.Elapsed(m.now())
}

// OnEnter restores the last good frame (or a blank screen) and fetches
// unconditionally.
func (m *Mode) OnEnter(ctx context.Context, buf *matrix.Buffer) error {
	if m.cache != nil {
		buf.Load(*m.cache)
	} else {
		buf.Clear()
	}
	return m.refresh(ctx, buf)
}

// Tick fetches and draws when elapsed has reached the refresh interval. It
// reports whether a refresh was attempted.
func (m *Mode) Tick(ctx context.Context, buf *matrix.Buffer, elapsed time.Duration) (bool, error) {
	if !m.timer.Due(elapsed) {
		return false, nil
	}
	return true, m.refresh(ctx, buf)
}

// refresh renders into a copy of buf and commits it only when the renderer
// produced a complete frame. The timer restarts whatever the outcome.
func (m *Mode) refresh(ctx context.Context, buf *matrix.Buffer) error {
	scratch := matrix.NewBuffer(buf.Frame())
	err := m.renderer.Refresh(ctx, scratch)
	m.timer.Reset(m.now())
	if err != nil && !errors.Is(err, weather.ErrUnknownConditionCode) {
		return err
	}
	f := scratch.Frame()
	m.cache = &f
	buf.Load(f)
	return err
}
