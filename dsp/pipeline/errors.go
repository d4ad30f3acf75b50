package pipeline

import "errors"

var (
	// ErrDomain indicates a stage was fed a signal in the wrong domain,
	// e.g. demangling a signal that was never transformed.
	ErrDomain = errors.New("pipeline: stage input in wrong domain")

	// ErrInvalidRate indicates a non-positive sample rate.
	ErrInvalidRate = errors.New("pipeline: invalid sample rate")
)
