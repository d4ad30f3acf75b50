package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Demangle extracts the one-sided magnitude sequence from a complex
// spectrum: |X[k]| for k in [0, N/2] inclusive. The mirrored negative
// half carries no information for real-valued input and is discarded.
//
// Output length is len(bins)/2 + 1. Scratch buffers are pooled, so in
// steady state this allocates only the output slice.
func Demangle(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	half := len(bins)/2 + 1
	out := make([]float64, half)
	re, im, buf := getScratch(half)

	for i := 0; i < half; i++ {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)

	return out
}
