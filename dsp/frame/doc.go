// Package frame prepares time-domain sample frames for spectral analysis.
//
// It provides zero-padding to an exact analysis length and a Collector
// that assembles the most recent N samples from an incoming stream.
//
// Common workflows:
//   - Pad(samples, fftSize) before a fixed-size transform
//   - PadPow2(samples) when any power-of-two length will do
//   - NewCollector(fftSize) fed from an audio callback, Frame() per tick
package frame
