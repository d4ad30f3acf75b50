package interp

import (
	"math"
	"testing"
)

func TestEndpointsExact(t *testing.T) {
	fns := map[string]Func{
		"linear":     Linear,
		"cosine":     Cosine,
		"smoothstep": SmoothStep,
	}

	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			if got := fn(2, 8, 0); got != 2 {
				t.Fatalf("fn(2,8,0) = %v, want 2", got)
			}
			if got := fn(2, 8, 1); got != 8 {
				t.Fatalf("fn(2,8,1) = %v, want 8", got)
			}
		})
	}
}

func TestMidpoint(t *testing.T) {
	// All three curves pass through the arithmetic midpoint at t=0.5.
	for _, fn := range []Func{Linear, Cosine, SmoothStep} {
		if got := fn(0, 10, 0.5); math.Abs(got-5) > 1e-12 {
			t.Fatalf("fn(0,10,0.5) = %v, want 5", got)
		}
	}
}

func TestCosineIsMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		v := Cosine(0, 1, float64(i)/100)
		if v < prev {
			t.Fatalf("not monotonic at t=%v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestCosineSlowerThanLinearNearEdges(t *testing.T) {
	if Cosine(0, 1, 0.1) >= Linear(0, 1, 0.1) {
		t.Fatal("cosine should lag linear near t=0")
	}
	if Cosine(0, 1, 0.9) <= Linear(0, 1, 0.9) {
		t.Fatal("cosine should lead linear near t=1")
	}
}
