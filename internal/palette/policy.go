package palette

// ForTemperature maps a Fahrenheit temperature onto its bucket color.
// 33°F itself is freezing; the very-cold band is open on both ends.
func ForTemperature(f float64) Color {
	switch {
	case f >= 80:
		return Hot
	case f >= 60:
		return OK
	case f >= 50:
		return AlmostOK
	case f >= 40:
		return Cold
	case f > 33:
		return VeryCold
	default:
		return Freezing
	}
}

// ForHumidity maps relative humidity (percent) onto its comfort color.
func ForHumidity(pct float64) Color {
	switch {
	case pct < 55:
		return HumidityLow
	case pct <= 65:
		return HumidityOK
	default:
		return HumidityHigh
	}
}

// ForPressure maps air pressure in millibars onto its indicator color.
func ForPressure(mb float64) Color {
	switch {
	case mb < 979:
		return PressureLow
	case mb <= 1027:
		return PressureOK
	default:
		return PressureHigh
	}
}

// Clamp restrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Scale maps v from [fromMin, fromMax] onto [toMin, toMax]. Values outside the
// source range are not clamped.
func Scale(v, fromMin, fromMax, toMin, toMax float64) float64 {
	return (v-fromMin)/(fromMax-fromMin)*(toMax-toMin) + toMin
}
