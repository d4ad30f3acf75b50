package resample_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/interp"
	"github.com/cwbudde/algo-spectra/dsp/resample"
)

func ExampleSubsample() {
	out, _ := resample.Subsample([]float64{0, 1, 2, 3, 4, 5}, 2)
	fmt.Println(out)
	// Output:
	// [0 2 4]
}

func ExampleSupersample() {
	out, _ := resample.Supersample([]float64{0, 4}, 4, interp.Linear)
	fmt.Println(out)
	// Output:
	// [0 1 2 3 4]
}
