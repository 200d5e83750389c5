package weather

import (
	"strconv"
	"time"
)

// Location identifies the city the appliance reports on.
type Location struct {
	ID int `json:"id"`
}

// Key returns a canonical string key for this location.
func (l Location) Key() string {
	return "city:" + strconv.Itoa(l.ID)
}

// Reading is a single observation or forecast entry, normalized to
// imperial units.
type Reading struct {
	Code        int       `json:"code"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`

	TemperatureF float64 `json:"temperatureF"`
	HumidityPct  float64 `json:"humidityPercent"`
	PressureMb   float64 `json:"pressureMb"`
}

// Summary returns the provider description, falling back to the code
// table when the provider sent none.
func (r Reading) Summary() string {
	if r.Description != "" {
		return r.Description
	}
	cond, err := Lookup(r.Code)
	if err != nil {
		return "unknown"
	}
	return cond.Description
}
