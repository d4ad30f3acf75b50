package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// LimitRange returns the sub-sequence of a one-sided magnitude
// spectrum covering [lowHz, highHz] inclusive.
//
// Bin mapping uses half-away-from-zero rounding,
// bin = round(freq * Nfft / sampleRate) with Nfft = 2*(len-1), and both
// indices are clamped to [0, len-1]. An empty result after clamping is
// valid output, not an error.
func LimitRange(magnitudes []float64, sampleRate, lowHz, highHz float64) ([]float64, error) {
	if lowHz > highHz {
		return nil, fmt.Errorf("%w: low %g Hz > high %g Hz", ErrInvalidRange, lowHz, highHz)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %g", ErrInvalidRange, sampleRate)
	}

	if len(magnitudes) == 0 {
		return nil, nil
	}
	if len(magnitudes) == 1 {
		out := []float64{magnitudes[0]}
		return out, nil
	}

	nfft := float64(2 * (len(magnitudes) - 1))
	maxBin := float64(len(magnitudes) - 1)

	lo := int(core.Clamp(math.Round(lowHz*nfft/sampleRate), 0, maxBin))
	hi := int(core.Clamp(math.Round(highHz*nfft/sampleRate), 0, maxBin))
	if lo > hi {
		return []float64{}, nil
	}

	out := make([]float64, hi-lo+1)
	copy(out, magnitudes[lo:hi+1])

	return out, nil
}
