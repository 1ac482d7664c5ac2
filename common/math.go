package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// Gravity and MaxFallSpeed are in pixels/s^2 and pixels/s.
	Gravity      = 1800.0
	MaxFallSpeed = 900.0
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
