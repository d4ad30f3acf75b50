package frame

import (
	"errors"
	"testing"
)

func TestCollectorWarmupPadsWithZeros(t *testing.T) {
	c, err := NewCollector(4)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	c.Push([]float64{1, 2})

	got := c.Frame()
	want := []float64{0, 0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame = %v, want %v", got, want)
		}
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestCollectorKeepsNewestSamples(t *testing.T) {
	c, err := NewCollector(4)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	c.Push([]float64{1, 2, 3, 4})
	c.Push([]float64{5, 6})

	got := c.Frame()
	want := []float64{3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame = %v, want %v", got, want)
		}
	}
}

func TestCollectorLargePushOverwritesEverything(t *testing.T) {
	c, _ := NewCollector(3)
	c.Push([]float64{1, 2, 3, 4, 5, 6, 7})

	got := c.Frame()
	want := []float64{5, 6, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame = %v, want %v", got, want)
		}
	}
}

func TestCollectorReset(t *testing.T) {
	c, _ := NewCollector(2)
	c.Push([]float64{1, 2})
	c.Reset()

	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}

	got := c.Frame()
	if got[0] != 0 || got[1] != 0 {
		t.Fatalf("frame = %v, want zeros", got)
	}
}

func TestCollectorRejectsBadCapacity(t *testing.T) {
	if _, err := NewCollector(0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}
