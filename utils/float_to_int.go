package utils

import "math"

// FloatToInt16 clamps x to [-1, 1] and scales it by 32767, rounding to the
// nearest step.
func FloatToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for both signs so that +1 and -1 stay symmetric
	return int16(math.Round(x * 32767.0))
}

// Int16ToFloat maps a 16-bit PCM sample onto [-1, 1).
func Int16ToFloat(v int16) float64 {
	return float64(v) / 32768.0
}
