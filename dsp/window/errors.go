package window

import "errors"

var (
	// ErrInvalidSize indicates a non-positive window size.
	ErrInvalidSize = errors.New("window: size must be > 0")

	errMismatchedLength = errors.New("window: samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return ErrInvalidSize
	}
	return nil
}
