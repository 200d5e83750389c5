package palette

import (
	"fmt"
	"image/color"
)

// Color is an RGB triple as written to the LED matrix.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to the image/color representation used by font renderers.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// FromRGBA drops the alpha channel.
func FromRGBA(c color.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// General colors. Channels are kept below 255 so the matrix is not blinding.
var (
	Red          = RGB(200, 0, 0)
	Orange       = RGB(200, 145, 0)
	Yellow       = RGB(200, 200, 0)
	Green        = RGB(0, 200, 0)
	Blue         = RGB(0, 0, 200)
	Violet       = RGB(75, 0, 130)
	Pink         = RGB(238, 0, 238)
	NeutralWhite = RGB(205, 190, 80)
	Black        = RGB(0, 0, 0)
	Grey         = RGB(50, 50, 50)
	White        = RGB(200, 200, 200)
)

// Condition group colors.
var (
	Thunder = RGB(102, 102, 0)
	Drizzle = RGB(0, 204, 204)
	Rain    = Blue
	Snow    = White
	Atmos   = RGB(70, 50, 100)
	Danger  = Red
	Clear   = Yellow
	Clouds  = Grey
	Wind    = RGB(204, 153, 255)

	// Unknown marks a condition code missing from the table.
	Unknown = RGB(120, 60, 0)
)

// Temperature bucket colors.
var (
	Freezing = White
	VeryCold = Pink
	Cold     = RGB(70, 130, 174)
	AlmostOK = RGB(0, 200, 150)
	OK       = Green
	Hot      = Red
)

// Humidity and pressure indicator colors.
var (
	HumidityLow  = Cold
	HumidityOK   = Green
	HumidityHigh = Red

	PressureLow  = HumidityLow
	PressureOK   = HumidityOK
	PressureHigh = HumidityHigh
)

// Fallback fills pixels that carry no reading.
var Fallback = NeutralWhite

// Bar colors for the indoor sensor graph.
var (
	BarTemperature = RGB(255, 0, 0)
	BarPressure    = RGB(0, 255, 0)
	BarHumidity    = RGB(0, 0, 255)
)
