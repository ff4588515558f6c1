package main

// clampf constrains v to lie within the inclusive [min, max] range.
func clampf(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampInt constrains v to lie within the inclusive [min, max] range.
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// lerp interpolates linearly between a and b by t in [0, 1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// rangeFrom maps a unit random value onto [min, max).
func rangeFrom(u, min, max float64) float64 {
	return min + u*(max-min)
}
