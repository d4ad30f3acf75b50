// Package resample changes the length of magnitude sequences by
// integer factors.
//
// Subsample keeps every factor-th element; Supersample inserts
// interpolated points between adjacent elements. The two are
// length-inverse for matching factors: supersampling a subsampled
// sequence restores the original length when (len-1) divides evenly.
//
// Common workflows:
//   - Subsample(values, 4)
//   - Supersample(values, 2, nil)            // cosine interpolation
//   - Supersample(values, 2, interp.Linear)
package resample
