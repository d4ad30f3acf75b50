package frame

import (
	"errors"
	"testing"
)

func TestPadExactLengthIsIdentity(t *testing.T) {
	in := []float64{1, 2, 3}

	out, err := Pad(in, 3)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}

	// Output must be a fresh slice, not an alias of the input.
	out[0] = 99
	if in[0] != 1 {
		t.Fatal("Pad aliased its input")
	}
}

func TestPadZeroFill(t *testing.T) {
	in := []float64{1, 2, 3}

	out, err := Pad(in, 8)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	if len(out) != 8 {
		t.Fatalf("len = %d, want 8", len(out))
	}
	for i := 3; i < 8; i++ {
		if out[i] != 0 {
			t.Fatalf("out[%d] = %v, want 0", i, out[i])
		}
	}
}

func TestPadRejectsShortTarget(t *testing.T) {
	_, err := Pad([]float64{1, 2, 3}, 2)
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}

func TestPadPow2(t *testing.T) {
	out := PadPow2(make([]float64, 1000))
	if len(out) != 1024 {
		t.Fatalf("len = %d, want 1024", len(out))
	}

	same := PadPow2(make([]float64, 512))
	if len(same) != 512 {
		t.Fatalf("len = %d, want 512", len(same))
	}
}
