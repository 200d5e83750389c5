package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/i474232898/sense-weather/internal/weather"
	"github.com/sony/gobreaker"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherProvider implements weather.Source for OpenWeatherMap, addressed
// by city id and queried in imperial units.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherProvider creates a provider that makes one attempt per call.
func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: openWeatherBaseURL,
		client:  client,
		circuit: newCircuitBreaker("openweather"),
	}
}

// WithBaseURL points the provider at another API root.
func (p *OpenWeatherProvider) WithBaseURL(u string) *OpenWeatherProvider {
	p.baseURL = u
	return p
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type owmWeather struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type owmMain struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
	Pressure float64 `json:"pressure"`
}

// Current returns the latest observation.
func (p *OpenWeatherProvider) Current(ctx context.Context, loc weather.Location) (weather.Reading, error) {
	var payload struct {
		Dt      int64        `json:"dt"`
		Main    owmMain      `json:"main"`
		Weather []owmWeather `json:"weather"`
	}
	if err := p.get(ctx, "/weather", loc, nil, &payload); err != nil {
		return weather.Reading{}, err
	}
	return p.reading(payload.Dt, payload.Main, payload.Weather), nil
}

// ThreeHour returns the forecast in three-hour steps.
func (p *OpenWeatherProvider) ThreeHour(ctx context.Context, loc weather.Location, count int) ([]weather.Reading, error) {
	var payload struct {
		List []struct {
			Dt      int64        `json:"dt"`
			Main    owmMain      `json:"main"`
			Weather []owmWeather `json:"weather"`
		} `json:"list"`
	}
	extra := url.Values{}
	extra.Set("cnt", strconv.Itoa(count))
	if err := p.get(ctx, "/forecast", loc, extra, &payload); err != nil {
		return nil, err
	}

	readings := make([]weather.Reading, 0, len(payload.List))
	for _, item := range payload.List {
		readings = append(readings, p.reading(item.Dt, item.Main, item.Weather))
	}
	return readings, nil
}

// Daily returns one entry per day, today first.
func (p *OpenWeatherProvider) Daily(ctx context.Context, loc weather.Location, days int) ([]weather.Reading, error) {
	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Temp struct {
				Day float64 `json:"day"`
			} `json:"temp"`
			Humidity float64      `json:"humidity"`
			Pressure float64      `json:"pressure"`
			Weather  []owmWeather `json:"weather"`
		} `json:"list"`
	}
	extra := url.Values{}
	extra.Set("cnt", strconv.Itoa(days))
	if err := p.get(ctx, "/forecast/daily", loc, extra, &payload); err != nil {
		return nil, err
	}

	readings := make([]weather.Reading, 0, len(payload.List))
	for _, item := range payload.List {
		readings = append(readings, p.reading(item.Dt, owmMain{
			Temp:     item.Temp.Day,
			Humidity: item.Humidity,
			Pressure: item.Pressure,
		}, item.Weather))
	}
	return readings, nil
}

func (p *OpenWeatherProvider) reading(dt int64, main owmMain, items []owmWeather) weather.Reading {
	r := weather.Reading{
		TemperatureF: main.Temp,
		HumidityPct:  main.Humidity,
		PressureMb:   main.Pressure,
	}
	if dt > 0 {
		r.Timestamp = time.Unix(dt, 0).UTC()
	} else {
		r.Timestamp = time.Now().UTC()
	}
	if len(items) > 0 {
		r.Code = items[0].ID
		r.Description = items[0].Description
	}
	return r
}

// get performs a GET against path and decodes the JSON body into out. Every
// failure is reported as weather.ErrSourceUnavailable.
func (p *OpenWeatherProvider) get(ctx context.Context, path string, loc weather.Location, extra url.Values, out any) error {
	if p.apiKey == "" {
		return fmt.Errorf("%w: openweather api key is not configured", weather.ErrSourceUnavailable)
	}

	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("units", "imperial")
	values.Set("id", strconv.Itoa(loc.ID))
	for k, vs := range extra {
		for _, v := range vs {
			values.Add(k, v)
		}
	}
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s?%s", p.baseURL, path, values.Encode()), nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", weather.ErrSourceUnavailable, path, err)
	}

	resp, err := fetch(ctx, p.client, p.circuit, req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", weather.ErrSourceUnavailable, path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", weather.ErrSourceUnavailable, path, err)
	}
	return nil
}
