package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/i474232898/sense-weather/internal/weather"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("id") != "4975802" || r.URL.Query().Get("units") != "imperial" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"dt":1484499600,"main":{"temp":65,"humidity":58,"pressure":1013},"weather":[{"id":500,"description":"light rain"}]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cnt") != "2" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"list":[
			{"dt":1484510400,"main":{"temp":61,"humidity":60,"pressure":1012},"weather":[{"id":501,"description":"moderate rain"}]},
			{"dt":1484521200,"main":{"temp":55,"humidity":70,"pressure":1011},"weather":[{"id":804,"description":"overcast clouds"}]}
		]}`))
	})
	mux.HandleFunc("/forecast/daily", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list":[
			{"dt":1484499600,"temp":{"day":40},"humidity":80,"pressure":1000,"weather":[{"id":600,"description":"light snow"}]}
		]}`))
	})
	mux.HandleFunc("/broken/weather", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})
	mux.HandleFunc("/down/weather", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenWeatherCurrent(t *testing.T) {
	srv := newTestServer(t)
	p := NewOpenWeatherProvider(srv.Client(), "secret").WithBaseURL(srv.URL)

	r, err := p.Current(context.Background(), weather.Location{ID: 4975802})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Code != 500 || r.Description != "light rain" {
		t.Fatalf("unexpected condition: %+v", r)
	}
	if r.TemperatureF != 65 || r.HumidityPct != 58 || r.PressureMb != 1013 {
		t.Fatalf("unexpected values: %+v", r)
	}
	if !r.Timestamp.Equal(time.Unix(1484499600, 0)) {
		t.Fatalf("unexpected timestamp: %v", r.Timestamp)
	}
}

func TestOpenWeatherThreeHour(t *testing.T) {
	srv := newTestServer(t)
	p := NewOpenWeatherProvider(srv.Client(), "secret").WithBaseURL(srv.URL)

	got, err := p.ThreeHour(context.Background(), weather.Location{ID: 4975802}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Code != 501 || got[1].Code != 804 {
		t.Fatalf("unexpected forecast: %+v", got)
	}
	if got[1].TemperatureF != 55 {
		t.Fatalf("expected 55F, got %v", got[1].TemperatureF)
	}
}

func TestOpenWeatherDaily(t *testing.T) {
	srv := newTestServer(t)
	p := NewOpenWeatherProvider(srv.Client(), "secret").WithBaseURL(srv.URL)

	got, err := p.Daily(context.Background(), weather.Location{ID: 4975802}, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Code != 600 || got[0].TemperatureF != 40 {
		t.Fatalf("unexpected daily forecast: %+v", got)
	}
}

func TestOpenWeatherFailuresAreSourceUnavailable(t *testing.T) {
	srv := newTestServer(t)
	loc := weather.Location{ID: 4975802}

	cases := map[string]*OpenWeatherProvider{
		"missing key":  NewOpenWeatherProvider(srv.Client(), "").WithBaseURL(srv.URL),
		"rejected key": NewOpenWeatherProvider(srv.Client(), "wrong").WithBaseURL(srv.URL),
		"bad payload":  NewOpenWeatherProvider(srv.Client(), "secret").WithBaseURL(srv.URL + "/broken"),
		"server error": NewOpenWeatherProvider(srv.Client(), "secret").WithBaseURL(srv.URL + "/down"),
	}
	for name, p := range cases {
		if _, err := p.Current(context.Background(), loc); !errors.Is(err, weather.ErrSourceUnavailable) {
			t.Fatalf("%s: expected ErrSourceUnavailable, got %v", name, err)
		}
	}
}
