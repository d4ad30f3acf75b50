// Package squish nonlinearly compresses magnitude sequences toward
// lower indices, approximating the logarithmic density of perceived
// pitch without computing logarithms per bin.
package squish

import (
	"errors"
	"fmt"
)

// ErrInvalidFactor indicates a compression factor outside (0, 1).
var ErrInvalidFactor = errors.New("squish: factor must be in (0, 1)")

// Compress returns input reduced by progressively skipping elements.
//
// A floating-point read cursor starts at 0; each emitted element
// advances it by 1 + cursor*factor, so the skip distance grows with
// the index. High bins, where adjacent FFT bins are perceptually
// close, are thinned the most. The output is strictly shorter than the
// input for factor > 0 and len(input) > 1.
func Compress(input []float64, factor float64) ([]float64, error) {
	if factor <= 0 || factor >= 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidFactor, factor)
	}

	out := make([]float64, 0, len(input))
	cursor := 0.0
	for int(cursor) < len(input) {
		out = append(out, input[int(cursor)])
		cursor += 1 + cursor*factor
	}

	return out, nil
}
