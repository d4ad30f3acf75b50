// Command spectra renders the spectrum of a WAV file as ASCII bars.
//
// Usage:
//
//	spectra [flags] input.wav
//
// Each analysis frame is padded, windowed, transformed and converted
// to dBFS, then drawn as one block of horizontal bars. With -stats it
// prints per-frame spectral statistics instead of bars.
//
// Examples:
//
//	spectra track.wav
//	spectra -size 2048 -window blackman -low 50 -high 16000 track.wav
//	spectra -squish 0.9 -sub 4 -super 2 track.wav
//	spectra -stats -frames 10 track.wav
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-spectra/dsp/frame"
	"github.com/cwbudde/algo-spectra/dsp/pipeline"
	"github.com/cwbudde/algo-spectra/dsp/window"
	"github.com/cwbudde/algo-spectra/stats/frequency"
)

var windowsByName = map[string]window.Type{
	"rectangular": window.TypeRectangular,
	"hann":        window.TypeHann,
	"hamming":     window.TypeHamming,
	"blackman":    window.TypeBlackman,
}

func main() {
	size := flag.Int("size", 1024, "transform length in samples (power of two)")
	windowName := flag.String("window", "hann", "analysis window: rectangular, hann, hamming, blackman")
	low := flag.Float64("low", 20, "lowest retained frequency in Hz")
	high := flag.Float64("high", 18000, "highest retained frequency in Hz")
	squishFactor := flag.Float64("squish", 0, "index compression factor in (0,1), 0 disables")
	sub := flag.Int("sub", 0, "subsample factor, 0 disables")
	super := flag.Int("super", 0, "supersample factor, 0 disables")
	smooth := flag.Float64("smooth", 0, "frame smoothing factor in [0,1], 0 disables")
	frames := flag.Int("frames", 4, "number of frames to render, 0 for all")
	stats := flag.Bool("stats", false, "print per-frame statistics instead of bars")
	width := flag.Int("width", 60, "bar width in characters")
	floor := flag.Float64("floor", -90, "dBFS level drawn as an empty bar")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spectra [flags] input.wav\n\n")
		fmt.Fprintf(os.Stderr, "Renders the spectrum of a WAV file as ASCII bars.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  spectra track.wav\n")
		fmt.Fprintf(os.Stderr, "  spectra -size 2048 -window blackman track.wav\n")
		fmt.Fprintf(os.Stderr, "  spectra -stats -frames 10 track.wav\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	windowType, ok := windowsByName[strings.ToLower(strings.TrimSpace(*windowName))]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown window %q\n", *windowName)
		os.Exit(1)
	}

	samples, sampleRate, err := loadMono(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	chain, err := pipeline.New(pipeline.Config{
		TargetSize:   *size,
		Window:       windowType,
		LowHz:        *low,
		HighHz:       *high,
		SquishFactor: *squishFactor,
		Resample: pipeline.ResampleConfig{
			SubsampleFactor:   *sub,
			SupersampleFactor: *super,
		},
		Smoothing: *smooth,
	}, sampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *stats {
		err = printStats(samples, sampleRate, *size, windowType, *frames)
	} else {
		err = printBars(chain, samples, *size, *frames, *width, *floor)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadMono decodes a WAV file and mixes all channels down to a single
// float64 stream in [-1, 1].
func loadMono(path string) ([]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("decode %s: missing format", path)
	}

	return mixdown(buf, int(dec.BitDepth)), float64(buf.Format.SampleRate), nil
}

// mixdown averages all channels of an interleaved PCM buffer and
// rescales the result to [-1, 1] by the source bit depth.
func mixdown(buf *audio.IntBuffer, bitDepth int) []float64 {
	channels := buf.Format.NumChannels
	scale := float64(uint64(1) << (bitDepth - 1))

	mono := make([]float64, len(buf.Data)/channels)
	for i := range mono {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i*channels+ch])
		}
		mono[i] = sum / (float64(channels) * scale)
	}

	return mono
}

// eachFrame feeds the sample stream through a collector in
// frameLen-sized hops and calls fn with each analysis frame. The
// collector keeps the newest frameLen samples, so the trailing
// partial hop still yields a full frame.
func eachFrame(samples []float64, frameLen, maxFrames int, fn func(n int, f []float64) error) error {
	collector, err := frame.NewCollector(frameLen)
	if err != nil {
		return err
	}

	n := 0
	for start := 0; start < len(samples); start += frameLen {
		if maxFrames > 0 && n >= maxFrames {
			break
		}
		end := start + frameLen
		if end > len(samples) {
			end = len(samples)
		}
		collector.Push(samples[start:end])

		if err := fn(n, collector.Frame()); err != nil {
			return err
		}
		n++
	}

	return nil
}

func printBars(chain *pipeline.Chain, samples []float64, frameLen, maxFrames, width int, floor float64) error {
	return eachFrame(samples, frameLen, maxFrames, func(n int, f []float64) error {
		out, err := chain.ProcessSmoothed(f)
		if err != nil {
			return err
		}

		fmt.Printf("frame %d\n", n)
		for _, db := range out {
			fmt.Println(bar(db, floor, width))
		}
		fmt.Println()

		return nil
	})
}

// bar renders one dBFS value as a fixed-width horizontal bar between
// floor and 0 dBFS.
func bar(db, floor float64, width int) string {
	t := (db - floor) / -floor
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	filled := int(t * float64(width))

	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}

// printStats runs each frame only up to the magnitude stage, so the
// statistics operate on linear values rather than decibels.
func printStats(samples []float64, sampleRate float64, frameLen int, windowType window.Type, maxFrames int) error {
	stages := []pipeline.Stage{pipeline.Pad(frameLen)}
	if windowType != window.TypeRectangular {
		stages = append(stages, pipeline.Window(windowType))
	}
	stages = append(stages, pipeline.FFT(frameLen), pipeline.Demangle())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frame\tPeak [Hz]\tPeak [dB]\tCentroid [Hz]\tSpread [Hz]\tFlatness\n")
	fmt.Fprintf(tw, "-----\t---------\t---------\t-------------\t-----------\t--------\n")

	err := eachFrame(samples, frameLen, maxFrames, func(n int, f []float64) error {
		sig, err := pipeline.Run(pipeline.NewTimeSignal(f, sampleRate), stages...)
		if err != nil {
			return err
		}

		s := frequency.Calculate(sig.Samples, sampleRate)
		fmt.Fprintf(tw, "%d\t%.1f\t%.2f\t%.1f\t%.1f\t%.4f\n",
			n, s.PeakHz, s.PeakDB, s.Centroid, s.Spread, s.Flatness)

		return nil
	})
	if err != nil {
		return err
	}

	return tw.Flush()
}
