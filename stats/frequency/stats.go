// Package frequency computes descriptive statistics over one-sided
// magnitude spectra, as produced by the demangle stage.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Stats summarizes a one-sided magnitude spectrum (linear scale,
// bins 0..Nyquist).
type Stats struct {
	BinCount int

	DC      float64 // bin 0 magnitude
	Peak    float64
	PeakBin int
	PeakHz  float64
	PeakDB  float64

	Average float64
	Energy  float64 // sum of squared magnitudes

	Centroid float64 // spectral centroid (Hz)
	Spread   float64 // standard deviation around the centroid (Hz)
	Flatness float64 // Wiener entropy, 0..1, DC excluded
}

// BinFrequency returns the center frequency in Hz of bin i in a
// one-sided spectrum with binCount bins. The underlying transform
// length is 2*(binCount-1).
func BinFrequency(i int, sampleRate float64, binCount int) float64 {
	if binCount < 2 {
		return 0
	}
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes all statistics in one pass plus the shape
// descriptors. Magnitudes must be linear, not decibels.
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{PeakDB: math.Inf(-1)}
	}

	s := Stats{
		BinCount: n,
		DC:       magnitude[0],
		Peak:     magnitude[0],
	}

	sum := 0.0
	for i, v := range magnitude {
		sum += v
		s.Energy += v * v
		if v > s.Peak {
			s.Peak = v
			s.PeakBin = i
		}
	}
	s.Average = sum / float64(n)
	s.PeakHz = BinFrequency(s.PeakBin, sampleRate, n)
	s.PeakDB = core.LinearToDB(s.Peak)

	s.Centroid = centroid(magnitude, sampleRate, sum)
	s.Spread = spread(magnitude, sampleRate, s.Centroid, sum)
	s.Flatness = Flatness(magnitude)

	return s
}

// Centroid returns the amplitude-weighted mean frequency in Hz.
func Centroid(magnitude []float64, sampleRate float64) float64 {
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}
	return centroid(magnitude, sampleRate, sum)
}

func centroid(magnitude []float64, sampleRate, sum float64) float64 {
	n := len(magnitude)
	if n < 2 || sum == 0 {
		return 0
	}

	weighted := 0.0
	for i, v := range magnitude {
		weighted += BinFrequency(i, sampleRate, n) * v
	}

	return weighted / sum
}

// Spread returns the amplitude-weighted standard deviation of
// frequency around the centroid, in Hz.
func Spread(magnitude []float64, sampleRate float64) float64 {
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}
	return spread(magnitude, sampleRate, centroid(magnitude, sampleRate, sum), sum)
}

func spread(magnitude []float64, sampleRate, cent, sum float64) float64 {
	n := len(magnitude)
	if n < 2 || sum == 0 {
		return 0
	}

	weighted := 0.0
	for i, v := range magnitude {
		d := BinFrequency(i, sampleRate, n) - cent
		weighted += d * d * v
	}

	return math.Sqrt(weighted / sum)
}

// Flatness returns the ratio of geometric to arithmetic mean over
// bins 1..N-1. White noise approaches 1, a pure tone approaches 0.
// Any zero bin forces the geometric mean, and therefore the result,
// to zero.
func Flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0
	for _, v := range magnitude[1:] {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}
	if sumLin == 0 {
		return 0
	}

	bins := float64(n - 1)

	return math.Exp(sumLog/bins) / (sumLin / bins)
}
