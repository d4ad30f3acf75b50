package squish

import (
	"errors"
	"testing"
)

func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestCompressShrinks(t *testing.T) {
	in := ramp(512)

	for _, factor := range []float64{0.1, 0.5, 0.9} {
		out, err := Compress(in, factor)
		if err != nil {
			t.Fatalf("factor %g: %v", factor, err)
		}
		if len(out) >= len(in) {
			t.Fatalf("factor %g: len = %d, want < %d", factor, len(out), len(in))
		}
		if len(out) == 0 || out[0] != 0 {
			t.Fatalf("factor %g: first element = %v, want input[0]", factor, out)
		}
	}
}

func TestCompressSkipGrowsWithIndex(t *testing.T) {
	out, err := Compress(ramp(1024), 0.5)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	// Emitted values are source indices; gaps between them must never
	// shrink as the cursor advances.
	prevGap := 0.0
	for i := 1; i < len(out); i++ {
		gap := out[i] - out[i-1]
		if gap < prevGap {
			t.Fatalf("gap shrank at %d: %v after %v", i, gap, prevGap)
		}
		prevGap = gap
	}
}

func TestCompressHigherFactorCompressesMore(t *testing.T) {
	in := ramp(1024)

	loose, _ := Compress(in, 0.1)
	tight, _ := Compress(in, 0.9)
	if len(tight) >= len(loose) {
		t.Fatalf("len(0.9) = %d, want < len(0.1) = %d", len(tight), len(loose))
	}
}

func TestCompressRejectsBadFactors(t *testing.T) {
	in := ramp(16)

	for _, factor := range []float64{-0.5, 0, 1, 1.5} {
		if _, err := Compress(in, factor); !errors.Is(err, ErrInvalidFactor) {
			t.Fatalf("factor %g: err = %v, want ErrInvalidFactor", factor, err)
		}
	}
}

func TestCompressEmptyInput(t *testing.T) {
	out, err := Compress(nil, 0.5)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}
