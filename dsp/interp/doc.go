// Package interp provides two-point interpolation functions used by
// the resampling stages.
package interp
