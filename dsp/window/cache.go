package window

import "sync"

// Cache memoizes generated coefficients per length for one window
// type, so trigonometric tables are not rebuilt every frame.
//
// Cached slices are shared and must be treated as read-only; use
// [ApplyCoefficients] rather than mutating them. A Cache is safe for
// concurrent use.
type Cache struct {
	typ  Type
	opts []Option

	mu     sync.RWMutex
	coeffs map[int][]float64
}

// NewCache returns a coefficient cache for the given window type.
func NewCache(t Type, opts ...Option) *Cache {
	return &Cache{
		typ:    t,
		opts:   opts,
		coeffs: make(map[int][]float64),
	}
}

// Coefficients returns the cached coefficients for the given length,
// generating them on first use. Returns nil for length <= 0.
func (c *Cache) Coefficients(length int) []float64 {
	if length <= 0 {
		return nil
	}

	c.mu.RLock()
	cached, ok := c.coeffs[length]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.coeffs[length]; ok {
		return cached
	}

	generated := Generate(c.typ, length, c.opts...)
	c.coeffs[length] = generated

	return generated
}

// Type returns the window type this cache generates.
func (c *Cache) Type() Type {
	return c.typ
}
