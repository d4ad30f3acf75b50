package pipeline

import "math"

// Lerp blends two magnitude vectors element-wise, returning
// from + (to-from)*t. The shorter vector is treated as zero-padded to
// the longer length, and non-finite inputs count as zero so a single
// silent bin cannot poison the smoothed output.
func Lerp(from, to []float64, t float64) []float64 {
	n := len(from)
	if len(to) > n {
		n = len(to)
	}
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		a := finiteAt(from, i)
		b := finiteAt(to, i)
		out[i] = a + (b-a)*t
	}

	return out
}

func finiteAt(values []float64, i int) float64 {
	if i >= len(values) {
		return 0
	}
	v := values[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
