package spectrum

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Transform computes forward FFTs of one fixed power-of-two size,
// reusing the plan and input staging buffer across frames.
//
// Bin ordering of the output follows the standard complex DFT layout:
// index 0 is DC, 1..N/2-1 ascending positive frequency, N/2 Nyquist,
// N/2+1..N-1 the mirrored negative half.
//
// A Transform is not safe for concurrent use; give each goroutine its
// own instance.
type Transform struct {
	size int
	plan *algofft.Plan[complex128]
	in   []complex128
}

// NewTransform creates a Transform for the given FFT size.
// The size must be a power of two.
func NewTransform(size int) (*Transform, error) {
	if !core.IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: fft size must be a power of two: %d", ErrInvalidLength, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: init fft plan: %w", err)
	}

	return &Transform{
		size: size,
		plan: plan,
		in:   make([]complex128, size),
	}, nil
}

// Size returns the configured FFT size.
func (t *Transform) Size() int {
	return t.size
}

// Forward returns the complex spectrum of a real-valued frame.
// The input length must equal the configured size; the caller pads
// first (see the frame package).
func (t *Transform) Forward(input []float64) ([]complex128, error) {
	if len(input) != t.size {
		return nil, fmt.Errorf("%w: input length %d, transform size %d", ErrInvalidLength, len(input), t.size)
	}

	for i, v := range input {
		t.in[i] = complex(v, 0)
	}

	out := make([]complex128, t.size)
	if err := t.plan.Forward(out, t.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	return out, nil
}

// Forward is a one-shot transform for callers without a reusable plan.
// The input length must be a power of two.
func Forward(input []float64) ([]complex128, error) {
	t, err := NewTransform(len(input))
	if err != nil {
		return nil, err
	}

	return t.Forward(input)
}
