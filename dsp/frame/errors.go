package frame

import "errors"

// ErrInvalidLength indicates a frame length precondition violation.
var ErrInvalidLength = errors.New("frame: invalid length")
