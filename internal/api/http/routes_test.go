package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/sense-weather/internal/input"
	"github.com/i474232898/sense-weather/internal/store"
	"github.com/i474232898/sense-weather/internal/weather"
)

var testLoc = weather.Location{ID: 4975802}

func newApp(t *testing.T, queueSize int) (*fiber.App, *store.MemoryStore, *input.Queue) {
	t.Helper()
	app := fiber.New()
	memStore := store.NewMemoryStore()
	queue := input.NewQueue(queueSize)
	RegisterRoutes(app, memStore, testLoc, queue)
	return app, memStore, queue
}

func postInput(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/input", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func TestStatusNotFoundBeforeStart(t *testing.T) {
	app, memStore, _ := newApp(t, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}

	memStore.SetMode("menu", 1, "")
	memStore.RecordError("outdoor", errors.New("boom"))
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var st store.Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Mode != "menu" || st.Cursor != 1 || st.LastError == nil {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestCurrentWeather(t *testing.T) {
	app, memStore, _ := newApp(t, 1)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/weather/current", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}

	memStore.SaveReading(testLoc, weather.Reading{Code: 500, TemperatureF: 65})
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/weather/current", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var body struct {
		Summary string `json:"summary"`
		Group   string `json:"group"`
		Known   bool   `json:"known"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Summary != "Light rain" || !body.Known {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestPostInput(t *testing.T) {
	app, _, queue := newApp(t, 1)

	resp := postInput(t, app, `{"direction":"left"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, resp.StatusCode)
	}

	// Queue holds a single event; the next one is rejected.
	resp = postInput(t, app, `{"direction":"right","action":"released"}`)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, resp.StatusCode)
	}

	events := queue.Poll()
	if len(events) != 1 || events[0] != input.Press(input.Left) {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestPostInputValidation(t *testing.T) {
	app, _, queue := newApp(t, 4)

	for _, body := range []string{
		`{}`,
		`{"direction":"sideways"}`,
		`{"direction":"up","action":"tapped"}`,
		`not json`,
	} {
		resp := postInput(t, app, body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status %d, got %d", body, http.StatusBadRequest, resp.StatusCode)
		}
	}
	if n := len(queue.Poll()); n != 0 {
		t.Fatalf("expected no events queued, got %d", n)
	}
}
