package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1.0
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestPeakIndex(t *testing.T) {
	if got := PeakIndex([]float64{-3, 5, 2}); got != 1 {
		t.Fatalf("PeakIndex = %d, want 1", got)
	}
	if got := PeakIndex(nil); got != -1 {
		t.Fatalf("PeakIndex(nil) = %d, want -1", got)
	}
}

func TestDC(t *testing.T) {
	for _, v := range DC(0.25, 16) {
		if v != 0.25 {
			t.Fatalf("value = %v, want 0.25", v)
		}
	}
}
