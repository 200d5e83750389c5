package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/weather"
)

var (
	// ErrNotFound is returned before anything has been recorded.
	ErrNotFound = errors.New("no data recorded yet")
)

// ErrorRecord is the last error a mode swallowed.
type ErrorRecord struct {
	Mode    string    `json:"mode"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Status is a point-in-time snapshot of what the appliance shows.
type Status struct {
	Mode      string       `json:"mode"`
	Cursor    int          `json:"cursor"`
	Session   string       `json:"session,omitempty"`
	Frame     matrix.Frame `json:"frame"`
	LastError *ErrorRecord `json:"lastError,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// MemoryStore is a concurrency-safe, latest-only store. The control loop
// writes to it; the HTTP API reads from it.
type MemoryStore struct {
	mu sync.RWMutex

	status *Status

	// key: location key, value: latest current reading
	readings map[string]weather.Reading

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		readings: make(map[string]weather.Reading),
		now:      time.Now,
	}
}

// update applies fn to the status under the write lock, creating it on
// first use.
func (s *MemoryStore) update(fn func(st *Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == nil {
		s.status = &Status{}
	}
	fn(s.status)
	s.status.UpdatedAt = s.now()
}

// SaveReading replaces the latest current reading for a location.
func (s *MemoryStore) SaveReading(loc weather.Location, r weather.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readings[loc.Key()] = r
}

// GetLatest returns the most recent current reading for a location.
func (s *MemoryStore) GetLatest(loc weather.Location) (weather.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.readings[loc.Key()]
	if !ok {
		return weather.Reading{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) SetMode(mode string, cursor int, session string) {
	s.update(func(st *Status) {
		st.Mode = mode
		st.Cursor = cursor
		st.Session = session
	})
}

func (s *MemoryStore) SetFrame(f matrix.Frame) {
	s.update(func(st *Status) {
		st.Frame = f
	})
}

func (s *MemoryStore) RecordError(mode string, err error) {
	if err == nil {
		return
	}
	s.update(func(st *Status) {
		st.LastError = &ErrorRecord{Mode: mode, Message: err.Error(), At: s.now()}
	})
}

// Status returns a copy of the current status.
func (s *MemoryStore) Status() (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status == nil {
		return Status{}, ErrNotFound
	}
	st := *s.status
	if st.LastError != nil {
		e := *st.LastError
		st.LastError = &e
	}
	return st, nil
}
