// Package spectrum converts time-domain frames into frequency-domain
// magnitude sequences.
//
// The FFT itself is delegated to the algo-fft backend; this package
// owns plan reuse, spectrum unpacking, and the magnitude-domain
// helpers a spectrum display needs:
//
//   - Transform: forward FFT of one fixed power-of-two size
//   - Demangle: one-sided magnitudes [DC..Nyquist] of a complex spectrum
//   - LimitRange: slice magnitudes to a frequency band
//   - ToDBFS: linear magnitude to decibels relative to full scale
package spectrum
