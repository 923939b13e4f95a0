package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// Gravity is applied along +Y (screen-down coordinates).
	Gravity = 1800.0
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
