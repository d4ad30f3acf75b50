package spectrum

import "errors"

var (
	// ErrInvalidLength indicates a transform input that is not the
	// configured power-of-two size.
	ErrInvalidLength = errors.New("spectrum: invalid length")

	// ErrInvalidRange indicates malformed frequency bounds.
	ErrInvalidRange = errors.New("spectrum: invalid frequency range")
)
