// Package pipeline composes the spectral transform stages into one
// deterministic per-frame processing chain.
//
// A Chain turns a time-domain sample frame into a render-ready
// decibel-scaled magnitude vector: pad, window, FFT, demangle,
// optional band limiting and squishing, dBFS conversion, and optional
// resampling. Every stage is a pure value-in/value-out transform; the
// only state a Chain keeps between frames is its precomputed tables
// (window coefficients, FFT plan) and, when smoothing is enabled, the
// previous output frame.
//
// Custom orderings can bypass Chain entirely by composing Stage values
// with Run:
//
//	sig := pipeline.NewTimeSignal(samples, 44100)
//	out, err := pipeline.Run(sig,
//		pipeline.Pad(1024),
//		pipeline.Window(window.TypeHann),
//		pipeline.FFT(1024),
//		pipeline.Demangle(),
//		pipeline.ToDBFS(1.0),
//	)
//
// A stage error fails the whole frame; the caller skips rendering that
// frame rather than drawing a partial or defaulted result.
package pipeline
