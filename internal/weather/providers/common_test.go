package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/i474232898/sense-weather/internal/weather"
)

func TestFailedRequestIsNotRepeated(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	p := NewOpenWeatherProvider(srv.Client(), "secret").WithBaseURL(srv.URL)
	_, err := p.Current(context.Background(), weather.Location{ID: 4975802})
	if !errors.Is(err, weather.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("expected a single request, got %d", n)
	}
}

func TestStatusErr(t *testing.T) {
	cases := map[int]error{
		http.StatusOK:                  nil,
		http.StatusUnauthorized:        errUnauthorized,
		http.StatusTooManyRequests:     errRateLimited,
		http.StatusInternalServerError: errServerError,
		http.StatusNotFound:            errUnexpected,
	}
	for code, want := range cases {
		got := statusErr(code)
		if want == nil {
			if got != nil {
				t.Fatalf("%d: expected no error, got %v", code, got)
			}
			continue
		}
		if !errors.Is(got, want) {
			t.Fatalf("%d: expected %v, got %v", code, want, got)
		}
	}
}

func TestFetchWithoutClient(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.invalid/", nil)
	if _, err := fetch(context.Background(), nil, newCircuitBreaker("test"), req); !errors.Is(err, errNoHTTPClient) {
		t.Fatalf("expected errNoHTTPClient, got %v", err)
	}
}
