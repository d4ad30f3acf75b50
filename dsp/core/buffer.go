package core

// EnsureLen returns a slice of exactly n elements, reusing buf's
// backing array when its capacity allows. Grown regions may contain
// stale values; callers that need zeros use Zero.
func EnsureLen(buf []float64, n int) []float64 {
	switch {
	case n <= 0:
		return buf[:0]
	case n <= cap(buf):
		return buf[:n]
	default:
		return make([]float64, n)
	}
}

// Zero clears buf in place.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}
