package pipeline

import "strings"

// Domain describes which interpretations a Signal currently carries.
// Flags combine: a freshly transformed signal is both frequency-domain
// and amplitude-valued.
type Domain uint8

const (
	// DomainTime marks time-domain sample values.
	DomainTime Domain = 1 << iota
	// DomainFrequency marks frequency-domain values (complex bins or
	// magnitudes).
	DomainFrequency
	// DomainAmplitude marks linear amplitude values.
	DomainAmplitude
	// DomainDecibel marks decibel-scaled values.
	DomainDecibel
)

// Has reports whether all bits of flag are set.
func (d Domain) Has(flag Domain) bool {
	return d&flag == flag
}

// String returns a "+"-joined list of set domain flags.
func (d Domain) String() string {
	names := make([]string, 0, 4)
	for _, f := range []struct {
		bit  Domain
		name string
	}{
		{DomainTime, "time"},
		{DomainFrequency, "frequency"},
		{DomainAmplitude, "amplitude"},
		{DomainDecibel, "decibel"},
	} {
		if d.Has(f.bit) {
			names = append(names, f.name)
		}
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "+")
}

// Signal is one frame of data flowing through a chain. Samples holds
// time-domain or magnitude values; Bins holds the complex spectrum
// between the FFT and Demangle stages, and is nil otherwise.
type Signal struct {
	Samples    []float64
	Bins       []complex128
	Domain     Domain
	SampleRate float64
}

// NewTimeSignal wraps a time-domain sample frame for processing.
func NewTimeSignal(samples []float64, sampleRate float64) Signal {
	return Signal{
		Samples:    samples,
		Domain:     DomainTime | DomainAmplitude,
		SampleRate: sampleRate,
	}
}

// withSamples derives a signal that keeps domain and rate but carries
// new sample values.
func (s Signal) withSamples(samples []float64) Signal {
	return Signal{
		Samples:    samples,
		Domain:     s.Domain,
		SampleRate: s.SampleRate,
	}
}
