package frame

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Collector keeps the most recent samples of an incoming stream so a
// fixed-size analysis frame can be taken at any time.
//
// Push never blocks and Frame never waits for more data: a collector
// that has not yet seen capacity samples returns a frame with leading
// zeros. A Collector is not safe for concurrent use.
type Collector struct {
	ring   []float64
	write  int
	filled int
}

// NewCollector returns a Collector holding capacity samples.
func NewCollector(capacity int) (*Collector, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: collector capacity must be >= 1: %d", ErrInvalidLength, capacity)
	}

	return &Collector{ring: make([]float64, capacity)}, nil
}

// Push appends samples, discarding the oldest once capacity is exceeded.
func (c *Collector) Push(samples []float64) {
	for _, s := range samples {
		c.ring[c.write] = s
		c.write++
		if c.write == len(c.ring) {
			c.write = 0
		}
	}

	c.filled += len(samples)
	if c.filled > len(c.ring) {
		c.filled = len(c.ring)
	}
}

// Frame returns a copy of the newest samples in chronological order,
// always sized to the collector capacity.
func (c *Collector) Frame() []float64 {
	out := make([]float64, len(c.ring))
	c.FrameInto(out)
	return out
}

// FrameInto fills dst like Frame, reusing dst capacity. It returns the
// possibly reallocated slice.
func (c *Collector) FrameInto(dst []float64) []float64 {
	n := len(c.ring)
	dst = core.EnsureLen(dst, n)
	core.Zero(dst[:n-c.filled])

	// Oldest retained sample sits at the write cursor once the ring
	// has wrapped.
	start := c.write
	if c.filled < n {
		start = 0
	}

	for i := 0; i < c.filled; i++ {
		dst[n-c.filled+i] = c.ring[(start+i)%n]
	}

	return dst
}

// Len returns the number of samples collected so far, capped at capacity.
func (c *Collector) Len() int {
	return c.filled
}

// Reset discards all collected samples.
func (c *Collector) Reset() {
	c.write = 0
	c.filled = 0
	core.Zero(c.ring)
}
