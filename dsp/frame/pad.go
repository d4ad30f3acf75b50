package frame

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Pad returns a copy of input extended to exactly targetLen samples,
// with new positions set to zero.
//
// Padding never truncates: a target shorter than the input is a caller
// error and returns ErrInvalidLength.
func Pad(input []float64, targetLen int) ([]float64, error) {
	if targetLen < len(input) {
		return nil, fmt.Errorf("%w: target %d smaller than input %d", ErrInvalidLength, targetLen, len(input))
	}

	out := make([]float64, targetLen)
	copy(out, input)

	return out, nil
}

// PadPow2 pads input to the next power-of-two length.
// An input that already has power-of-two length is copied unchanged.
func PadPow2(input []float64) []float64 {
	out, _ := Pad(input, core.NextPowerOfTwo(len(input)))
	return out
}
