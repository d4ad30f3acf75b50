package frequency

import (
	"math"
	"testing"
)

func benchSpectrum(n int) []float64 {
	mag := make([]float64, n)
	for i := range mag {
		mag[i] = 0.5 + 0.5*math.Sin(float64(i)*0.1)
	}
	return mag
}

func BenchmarkCalculate(b *testing.B) {
	mag := benchSpectrum(513)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Calculate(mag, 44100)
	}
}

func BenchmarkFlatness(b *testing.B) {
	mag := benchSpectrum(513)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Flatness(mag)
	}
}
