package spectrum

import "github.com/cwbudde/algo-spectra/dsp/core"

// ToDBFS converts linear magnitudes to decibels relative to the given
// full-scale reference: out[i] = 20*log10(m/reference).
//
// Values below the default floor epsilon are clamped to it, so the
// result is always finite. A non-positive reference falls back to 1.
func ToDBFS(magnitudes []float64, reference float64) []float64 {
	return ToDBFSWithFloor(magnitudes, reference, core.DefaultEpsilon)
}

// ToDBFSWithFloor is ToDBFS with a caller-chosen floor epsilon.
func ToDBFSWithFloor(magnitudes []float64, reference, epsilon float64) []float64 {
	if reference <= 0 {
		reference = 1
	}
	if epsilon <= 0 {
		epsilon = core.DefaultEpsilon
	}

	out := make([]float64, len(magnitudes))
	for i, m := range magnitudes {
		if m < epsilon {
			m = epsilon
		}
		out[i] = core.LinearToDB(m / reference)
	}

	return out
}
