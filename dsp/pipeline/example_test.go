package pipeline_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectra/dsp/pipeline"
	"github.com/cwbudde/algo-spectra/dsp/window"
)

func ExampleChain_Process() {
	const sampleRate = 44100.0

	chain, err := pipeline.New(pipeline.Config{
		TargetSize: 1024,
		Window:     window.TypeHann,
	}, sampleRate)
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	// One frame of a full-scale 440 Hz sine.
	frame := make([]float64, 1024)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate)
	}

	out, err := chain.Process(frame)
	if err != nil {
		fmt.Println("process:", err)
		return
	}

	peak := 0
	for i, v := range out {
		if v > out[peak] {
			peak = i
		}
	}

	fmt.Printf("bins: %d\n", len(out))
	fmt.Printf("peak bin: %d (%.0f Hz)\n", peak, float64(peak)*sampleRate/1024)
	// Output:
	// bins: 513
	// peak bin: 10 (431 Hz)
}
