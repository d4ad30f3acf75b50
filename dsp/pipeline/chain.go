package pipeline

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/interp"
	"github.com/cwbudde/algo-spectra/dsp/resample"
	"github.com/cwbudde/algo-spectra/dsp/spectrum"
	"github.com/cwbudde/algo-spectra/dsp/squish"
	"github.com/cwbudde/algo-spectra/dsp/window"
)

// ResampleConfig controls the optional output resampling stages.
// A zero factor disables the corresponding stage.
type ResampleConfig struct {
	// SubsampleFactor keeps every n-th magnitude before interpolation.
	SubsampleFactor int
	// SupersampleFactor stretches the sequence by inserting
	// interpolated values between neighbors.
	SupersampleFactor int
	// Interp selects the interpolation shape for supersampling.
	// Nil selects cosine interpolation.
	Interp interp.Func
}

// Config describes a full analysis chain. The zero value is usable:
// it selects a 1024-point Hann-windowed transform over the full
// spectrum with no squishing, no resampling and no smoothing.
type Config struct {
	// TargetSize is the transform length frames are padded to.
	// Must be a power of two. Zero selects 1024.
	TargetSize int

	// Window selects the analysis window applied before the
	// transform. The rectangular window skips the stage entirely.
	Window window.Type

	// LowHz and HighHz bound the retained frequency range. Both
	// zero selects the full range up to Nyquist.
	LowHz  float64
	HighHz float64

	// SquishFactor enables nonlinear index compression when in
	// (0, 1). Zero disables the stage.
	SquishFactor float64

	// SquishBeforeLimit applies squishing before the frequency
	// limit instead of after it.
	SquishBeforeLimit bool

	// Resample configures optional output resampling.
	Resample ResampleConfig

	// DBReference is the linear amplitude treated as 0 dBFS.
	// Zero selects 1.0, so a full-scale sine lands near 0 dBFS.
	DBReference float64

	// Epsilon floors magnitudes before the decibel conversion.
	// Zero selects [core.DefaultEpsilon].
	Epsilon float64

	// Smoothing blends each frame with the previous output of
	// [Chain.ProcessSmoothed]. It is the fraction of the new frame
	// taken per call, clamped to [0, 1]; zero disables smoothing.
	Smoothing float64
}

// Chain is a configured analysis pipeline turning time-domain sample
// frames into dBFS magnitude vectors. A Chain is not safe for
// concurrent use; the transform and smoothing state are shared
// between calls.
type Chain struct {
	stages     []Stage
	sampleRate float64
	smoothing  float64
	prev       []float64
}

// New validates cfg and builds the stage sequence for the given
// sample rate. All configuration errors surface here rather than on
// the first processed frame.
func New(cfg Config, sampleRate float64) (*Chain, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, sampleRate)
	}

	size := cfg.TargetSize
	if size == 0 {
		size = 1024
	}
	if !core.IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: target size %d is not a power of two", spectrum.ErrInvalidLength, size)
	}

	low, high := cfg.LowHz, cfg.HighHz
	if low == 0 && high == 0 {
		high = sampleRate / 2
	}
	if low > high || low < 0 {
		return nil, fmt.Errorf("%w: %v..%v Hz", spectrum.ErrInvalidRange, low, high)
	}

	if f := cfg.SquishFactor; f != 0 && (f <= 0 || f >= 1) {
		return nil, fmt.Errorf("%w: %v", squish.ErrInvalidFactor, f)
	}
	if f := cfg.Resample.SubsampleFactor; f != 0 && f < 1 {
		return nil, fmt.Errorf("%w: subsample %d", resample.ErrInvalidFactor, f)
	}
	if f := cfg.Resample.SupersampleFactor; f != 0 && f < 1 {
		return nil, fmt.Errorf("%w: supersample %d", resample.ErrInvalidFactor, f)
	}

	reference := cfg.DBReference
	if reference == 0 {
		reference = 1.0
	}

	// The transform scales an on-bin sine by size/2 and the window
	// attenuates it by its coherent gain. Folding both into the
	// decibel reference keeps a full-scale sine near 0 dBFS.
	gain := window.Info(cfg.Window).CoherentGain
	magnitudeRef := reference * float64(size) / 2 * gain

	stages := []Stage{Pad(size)}
	if cfg.Window != window.TypeRectangular {
		stages = append(stages, Window(cfg.Window))
	}
	stages = append(stages, FFT(size), Demangle())

	limit := Limit(low, high)
	if cfg.SquishFactor != 0 && cfg.SquishBeforeLimit {
		stages = append(stages, Squish(cfg.SquishFactor), limit)
	} else if cfg.SquishFactor != 0 {
		stages = append(stages, limit, Squish(cfg.SquishFactor))
	} else {
		stages = append(stages, limit)
	}

	stages = append(stages, ToDBFSWithFloor(magnitudeRef, cfg.Epsilon))

	if f := cfg.Resample.SubsampleFactor; f > 0 {
		stages = append(stages, Subsample(f))
	}
	if f := cfg.Resample.SupersampleFactor; f > 0 {
		stages = append(stages, Supersample(f, cfg.Resample.Interp))
	}

	return &Chain{
		stages:     stages,
		sampleRate: sampleRate,
		smoothing:  core.Clamp(cfg.Smoothing, 0, 1),
	}, nil
}

// SampleRate returns the rate the chain was built for.
func (c *Chain) SampleRate() float64 { return c.sampleRate }

// Process runs one frame through the chain and returns its dBFS
// magnitude vector. Frames longer than the target size are rejected
// by the pad stage.
func (c *Chain) Process(samples []float64) ([]float64, error) {
	out, err := Run(NewTimeSignal(samples, c.sampleRate), c.stages...)
	if err != nil {
		return nil, err
	}

	return out.Samples, nil
}

// ProcessSmoothed runs one frame through the chain and blends the
// result with the previous smoothed output, easing frame-to-frame
// jumps for display. With zero smoothing it behaves like [Process].
func (c *Chain) ProcessSmoothed(samples []float64) ([]float64, error) {
	cur, err := c.Process(samples)
	if err != nil {
		return nil, err
	}

	if c.smoothing == 0 || c.prev == nil {
		c.prev = cur
		return cur, nil
	}

	smoothed := Lerp(c.prev, cur, c.smoothing)
	c.prev = smoothed

	return smoothed, nil
}

// Reset drops the smoothing state, so the next frame passes through
// unblended.
func (c *Chain) Reset() {
	c.prev = nil
}
