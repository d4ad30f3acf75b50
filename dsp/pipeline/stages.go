package pipeline

import (
	"github.com/cwbudde/algo-spectra/dsp/frame"
	"github.com/cwbudde/algo-spectra/dsp/interp"
	"github.com/cwbudde/algo-spectra/dsp/resample"
	"github.com/cwbudde/algo-spectra/dsp/spectrum"
	"github.com/cwbudde/algo-spectra/dsp/squish"
	"github.com/cwbudde/algo-spectra/dsp/window"
)

// Pad returns a stage that zero-pads time-domain frames to targetLen.
func Pad(targetLen int) Stage {
	return &padStage{target: targetLen}
}

type padStage struct {
	target int
}

func (s *padStage) Name() string { return "pad" }

func (s *padStage) Process(sig Signal) (Signal, error) {
	if err := requireDomain(sig, s.Name(), DomainTime); err != nil {
		return Signal{}, err
	}

	padded, err := frame.Pad(sig.Samples, s.target)
	if err != nil {
		return Signal{}, err
	}

	return sig.withSamples(padded), nil
}

// Window returns a stage that applies the given window function.
// Coefficients are cached per frame length.
func Window(t window.Type) Stage {
	return &windowStage{cache: window.NewCache(t)}
}

type windowStage struct {
	cache *window.Cache
}

func (s *windowStage) Name() string { return window.Info(s.cache.Type()).Name + " window" }

func (s *windowStage) Process(sig Signal) (Signal, error) {
	if err := requireDomain(sig, s.Name(), DomainTime); err != nil {
		return Signal{}, err
	}

	windowed, err := window.ApplyCoefficients(sig.Samples, s.cache.Coefficients(len(sig.Samples)))
	if err != nil {
		return Signal{}, err
	}

	return sig.withSamples(windowed), nil
}

// FFT returns a stage that transforms time-domain frames of exactly
// size samples into a complex spectrum. The size must be a power of
// two; violations surface on the first processed frame.
func FFT(size int) Stage {
	return &fftStage{size: size}
}

type fftStage struct {
	size int
	tr   *spectrum.Transform
}

func (s *fftStage) Name() string { return "fft" }

func (s *fftStage) Process(sig Signal) (Signal, error) {
	if err := requireDomain(sig, s.Name(), DomainTime); err != nil {
		return Signal{}, err
	}

	if s.tr == nil {
		tr, err := spectrum.NewTransform(s.size)
		if err != nil {
			return Signal{}, err
		}
		s.tr = tr
	}

	bins, err := s.tr.Forward(sig.Samples)
	if err != nil {
		return Signal{}, err
	}

	return Signal{
		Bins:       bins,
		Domain:     DomainFrequency | DomainAmplitude,
		SampleRate: sig.SampleRate,
	}, nil
}

// Demangle returns a stage that reduces a complex spectrum to its
// one-sided magnitude sequence [DC..Nyquist].
func Demangle() Stage {
	return demangleStage{}
}

type demangleStage struct{}

func (demangleStage) Name() string { return "demangle" }

func (d demangleStage) Process(sig Signal) (Signal, error) {
	if err := requireDomain(sig, d.Name(), DomainFrequency); err != nil {
		return Signal{}, err
	}

	return Signal{
		Samples:    spectrum.Demangle(sig.Bins),
		Domain:     sig.Domain,
		SampleRate: sig.SampleRate,
	}, nil
}

// Limit returns a stage that slices a magnitude sequence to the bins
// covering [lowHz, highHz].
func Limit(lowHz, highHz float64) Stage {
	return &limitStage{low: lowHz, high: highHz}
}

type limitStage struct {
	low, high float64
}

func (s *limitStage) Name() string { return "limit frequency range" }

func (s *limitStage) Process(sig Signal) (Signal, error) {
	if err := requireDomain(sig, s.Name(), DomainFrequency); err != nil {
		return Signal{}, err
	}

	limited, err := spectrum.LimitRange(sig.Samples, sig.SampleRate, s.low, s.high)
	if err != nil {
		return Signal{}, err
	}

	return sig.withSamples(limited), nil
}

// Squish returns a stage that nonlinearly compresses a magnitude
// sequence toward lower indices.
func Squish(factor float64) Stage {
	return &squishStage{factor: factor}
}

type squishStage struct {
	factor float64
}

func (s *squishStage) Name() string { return "squish" }

func (s *squishStage) Process(sig Signal) (Signal, error) {
	if err := requireDomain(sig, s.Name(), DomainFrequency); err != nil {
		return Signal{}, err
	}

	squished, err := squish.Compress(sig.Samples, s.factor)
	if err != nil {
		return Signal{}, err
	}

	return sig.withSamples(squished), nil
}

// ToDBFS returns a stage that converts linear amplitudes to decibels
// relative to the given full-scale reference.
func ToDBFS(reference float64) Stage {
	return &dbfsStage{reference: reference}
}

// ToDBFSWithFloor is ToDBFS with a caller-chosen floor epsilon.
func ToDBFSWithFloor(reference, epsilon float64) Stage {
	return &dbfsStage{reference: reference, epsilon: epsilon}
}

type dbfsStage struct {
	reference float64
	epsilon   float64
}

func (s *dbfsStage) Name() string { return "to dbfs" }

func (s *dbfsStage) Process(sig Signal) (Signal, error) {
	if err := requireDomain(sig, s.Name(), DomainAmplitude); err != nil {
		return Signal{}, err
	}

	out := sig.withSamples(spectrum.ToDBFSWithFloor(sig.Samples, s.reference, s.epsilon))
	out.Domain = (out.Domain &^ DomainAmplitude) | DomainDecibel

	return out, nil
}

// Subsample returns a stage that keeps every factor-th value.
func Subsample(factor int) Stage {
	return &subsampleStage{factor: factor}
}

type subsampleStage struct {
	factor int
}

func (s *subsampleStage) Name() string { return "subsample" }

func (s *subsampleStage) Process(sig Signal) (Signal, error) {
	out, err := resample.Subsample(sig.Samples, s.factor)
	if err != nil {
		return Signal{}, err
	}

	return sig.withSamples(out), nil
}

// Supersample returns a stage that stretches the sequence by factor,
// inserting interpolated values. A nil fn selects cosine interpolation.
func Supersample(factor int, fn interp.Func) Stage {
	return &supersampleStage{factor: factor, fn: fn}
}

type supersampleStage struct {
	factor int
	fn     interp.Func
}

func (s *supersampleStage) Name() string { return "supersample" }

func (s *supersampleStage) Process(sig Signal) (Signal, error) {
	out, err := resample.Supersample(sig.Samples, s.factor, s.fn)
	if err != nil {
		return Signal{}, err
	}

	return sig.withSamples(out), nil
}
