package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails the test unless got and want have the
// same length and every element pair lies within the absolute
// tolerance eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("element %d: got %v, want %v (off by %v)", i, got[i], want[i], d)
		}
	}
}

// RequireFinite fails the test if data contains NaN or an infinity.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("element %d is not finite: %v", i, v)
		}
	}
}
