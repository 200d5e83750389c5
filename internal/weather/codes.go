package weather

import (
	"fmt"
	"sort"

	"github.com/i474232898/sense-weather/internal/palette"
)

// Condition is a row of the condition code table.
type Condition struct {
	Code        int
	Color       palette.Color
	Description string
}

// Group classifies condition codes by their hundreds digit.
type Group int

const (
	GroupUnknown Group = iota
	GroupThunderstorm
	GroupDrizzle
	GroupRain
	GroupSnow
	GroupAtmosphere
	GroupClear
	GroupClouds
	GroupExtreme
)

func (g Group) String() string {
	switch g {
	case GroupThunderstorm:
		return "thunderstorm"
	case GroupDrizzle:
		return "drizzle"
	case GroupRain:
		return "rain"
	case GroupSnow:
		return "snow"
	case GroupAtmosphere:
		return "atmosphere"
	case GroupClear:
		return "clear"
	case GroupClouds:
		return "clouds"
	case GroupExtreme:
		return "extreme"
	default:
		return "unknown"
	}
}

// GroupOf returns the meteorological group of a code.
func GroupOf(code int) Group {
	switch {
	case code >= 200 && code < 300:
		return GroupThunderstorm
	case code >= 300 && code < 400:
		return GroupDrizzle
	case code >= 500 && code < 600:
		return GroupRain
	case code >= 600 && code < 700:
		return GroupSnow
	case code >= 700 && code < 800:
		return GroupAtmosphere
	case code == 800:
		return GroupClear
	case code > 800 && code < 900:
		return GroupClouds
	case code >= 900 && code < 1000:
		return GroupExtreme
	default:
		return GroupUnknown
	}
}

// See https://openweathermap.org/weather-conditions.
var conditions = map[int]Condition{
	// Thunderstorm
	200: {200, palette.Thunder, "Tstorm w/ light rain"},
	201: {201, palette.Thunder, "Tstorm w/ rain"},
	202: {202, palette.Thunder, "Tstorm w/ heavy rain"},
	210: {210, palette.Thunder, "Light tstorm"},
	211: {211, palette.Thunder, "Thunderstorm"},
	212: {212, palette.Thunder, "Heavy tstorm"},
	221: {221, palette.Thunder, "Ragged tstorm"},
	230: {230, palette.Thunder, "Tstorm w/ light drizzle"},
	231: {231, palette.Thunder, "Tstorm w/ drizzle"},
	232: {232, palette.Thunder, "Tstorm w/ heavy drizzle"},
	// Drizzle
	300: {300, palette.Drizzle, "Light intensity drizzle"},
	301: {301, palette.Drizzle, "Drizzle"},
	302: {302, palette.Drizzle, "Heavy intensity drizzle"},
	310: {310, palette.Drizzle, "Light intensity drizzle rain"},
	311: {311, palette.Drizzle, "Drizzle rain"},
	312: {312, palette.Drizzle, "Heavy intensity drizzle rain"},
	313: {313, palette.Drizzle, "Shower rain & drizzle"},
	314: {314, palette.Drizzle, "Heavy shower rain & drizzle"},
	321: {321, palette.Drizzle, "Shower drizzle"},
	// Rain
	500: {500, palette.Rain, "Light rain"},
	501: {501, palette.Rain, "Moderate rain"},
	502: {502, palette.Rain, "Heavy intensity rain"},
	503: {503, palette.Rain, "Very heavy rain"},
	504: {504, palette.Rain, "Extreme rain"},
	511: {511, palette.Rain, "Freezing rain"},
	520: {520, palette.Rain, "Light intensity shower rain"},
	521: {521, palette.Rain, "Shower rain"},
	522: {522, palette.Rain, "Heavy intensity shower rain"},
	531: {531, palette.Rain, "Ragged shower rain"},
	// Snow
	600: {600, palette.Snow, "Light snow"},
	601: {601, palette.Snow, "Snow"},
	602: {602, palette.Snow, "Heavy snow"},
	611: {611, palette.Snow, "Sleet"},
	612: {612, palette.Snow, "Shower sleet"},
	615: {615, palette.Snow, "Light rain & snow"},
	616: {616, palette.Snow, "Rain & snow"},
	620: {620, palette.Snow, "Light shower snow"},
	621: {621, palette.Snow, "Shower snow"},
	622: {622, palette.Snow, "Heavy shower snow"},
	// Atmosphere
	701: {701, palette.Drizzle, "Mist"},
	711: {711, palette.Atmos, "Smoke"},
	721: {721, palette.Atmos, "Haze"},
	731: {731, palette.Atmos, "Sand & dust whirls"},
	741: {741, palette.Atmos, "Fog"},
	751: {751, palette.Atmos, "Sand"},
	761: {761, palette.Atmos, "Dust"},
	762: {762, palette.Atmos, "Volcanic ash"},
	771: {771, palette.Thunder, "Squalls"},
	781: {781, palette.Danger, "Tornado"},
	// Clear
	800: {800, palette.Clear, "Clear sky"},
	// Clouds
	801: {801, palette.Clouds, "Few clouds"},
	802: {802, palette.Clouds, "Scattered clouds"},
	803: {803, palette.Clouds, "Broken clouds"},
	804: {804, palette.Clouds, "Overcast clouds"},
	// Extreme
	900: {900, palette.Danger, "Tornado"},
	901: {901, palette.Danger, "Tropical storm"},
	902: {902, palette.Danger, "Hurricane"},
	903: {903, palette.Danger, "Extreme cold"},
	904: {904, palette.Danger, "Extreme heat"},
	905: {905, palette.Danger, "Excessive wind"},
	906: {906, palette.Danger, "Hail"},
	// Additional
	951: {951, palette.Clear, "Calm"},
	952: {952, palette.Wind, "Light breeze"},
	953: {953, palette.Wind, "Gentle breeze"},
	954: {954, palette.Wind, "Moderate breeze"},
	955: {955, palette.Wind, "Fresh breeze"},
	956: {956, palette.Wind, "Strong breeze"},
	957: {957, palette.Wind, "High wind"},
	958: {958, palette.Wind, "Gale-force wind"},
	959: {959, palette.Danger, "Severe gale-force wind"},
	960: {960, palette.Thunder, "Storm"},
	961: {961, palette.Danger, "Violent storm"},
	962: {962, palette.Danger, "Hurricane"},
}

// Lookup returns the table row for code.
func Lookup(code int) (Condition, error) {
	cond, ok := conditions[code]
	if !ok {
		return Condition{Code: code, Color: palette.Unknown, Description: "Unknown"}, fmt.Errorf("%w: %d", ErrUnknownConditionCode, code)
	}
	return cond, nil
}

// Codes returns every code in the table, ascending.
func Codes() []int {
	codes := make([]int, 0, len(conditions))
	for code := range conditions {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
