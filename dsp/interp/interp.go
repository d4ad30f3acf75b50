package interp

import "math"

// Func interpolates between a and b at position t in [0, 1].
type Func func(a, b, t float64) float64

// Linear interpolates on a straight line between a and b.
func Linear(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Cosine eases between a and b along a half cosine wave. Compared to
// Linear it has zero slope at both endpoints, which reads as smoother
// motion when magnitudes are rendered frame over frame.
func Cosine(a, b, t float64) float64 {
	eased := (1 - math.Cos(math.Pi*t)) * 0.5
	return a + (b-a)*eased
}

// SmoothStep eases between a and b with the cubic 3t^2-2t^3 curve, a
// cheaper approximation of Cosine.
func SmoothStep(a, b, t float64) float64 {
	eased := t * t * (3 - 2*t)
	return a + (b-a)*eased
}
