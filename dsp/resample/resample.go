package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/interp"
)

// ErrInvalidFactor indicates a resampling factor outside its domain.
var ErrInvalidFactor = errors.New("resample: invalid factor")

// Subsample returns the elements of input at indices 0, factor,
// 2*factor, and so on. A factor of 1 copies the input.
func Subsample(input []float64, factor int) ([]float64, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: subsample factor must be >= 1: %d", ErrInvalidFactor, factor)
	}

	out := make([]float64, 0, (len(input)+factor-1)/factor)
	for i := 0; i < len(input); i += factor {
		out = append(out, input[i])
	}

	return out, nil
}

// Supersample stretches input by inserting factor-1 interpolated
// points between each adjacent pair, using fn to compute them. A nil
// fn selects cosine interpolation. The output length is
// (len(input)-1)*factor + 1.
//
// Interpolation needs at least two points, so inputs shorter than 2
// are rejected along with factors below 1.
func Supersample(input []float64, factor int, fn interp.Func) ([]float64, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: supersample factor must be >= 1: %d", ErrInvalidFactor, factor)
	}
	if len(input) < 2 {
		return nil, fmt.Errorf("%w: supersample needs at least 2 input values: %d", ErrInvalidFactor, len(input))
	}

	if fn == nil {
		fn = interp.Cosine
	}

	out := make([]float64, 0, (len(input)-1)*factor+1)
	for i := 1; i < len(input); i++ {
		from, to := input[i-1], input[i]

		out = append(out, from)
		for k := 1; k < factor; k++ {
			out = append(out, fn(from, to, float64(k)/float64(factor)))
		}
	}

	return append(out, input[len(input)-1]), nil
}
