package weather

// Timeline joins the current observation with the three-hour forecast into
// at most n readings, current first.
func Timeline(current Reading, forecast []Reading, n int) []Reading {
	if n <= 0 {
		return nil
	}
	out := make([]Reading, 0, n)
	out = append(out, current)
	for _, r := range forecast {
		if len(out) >= n {
			break
		}
		out = append(out, r)
	}
	return out
}
