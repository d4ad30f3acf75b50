package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/spectrum"
)

func ExampleDemangle() {
	bins := []complex128{3 + 4i, 0 + 1i, -1 + 0i, 0 - 1i}
	mags := spectrum.Demangle(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mags[0], mags[1], mags[2])
	// Output:
	// 5.0 1.0 1.0
}

func ExampleToDBFS() {
	db := spectrum.ToDBFS([]float64{1.0, 0.5}, 1.0)
	fmt.Printf("%.1f %.1f\n", db[0], db[1])
	// Output:
	// 0.0 -6.0
}

func ExampleLimitRange() {
	// 5 one-sided bins of an 8-point FFT at 8 Hz: 1 Hz per bin.
	mags := []float64{0, 1, 2, 3, 4}
	band, _ := spectrum.LimitRange(mags, 8, 1, 3)
	fmt.Println(band)
	// Output:
	// [1 2 3]
}
