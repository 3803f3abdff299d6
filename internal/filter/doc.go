// Package filter provides the per-band pixel kernels run by the imgfilter
// executor.
//
// This package contains three single-pass transforms:
//   - Negative: inverts red, green and blue, keeps alpha
//   - Threshold: binarizes on the truncated RGB mean, forces alpha to 255
//   - EdgeDetect: right/down gradient magnitude on the RGB mean
//
// Every kernel reads the source buffer and writes only the destination rows
// of the band it is given, so kernels for disjoint bands can run concurrently
// without locking. Sources are never modified.
package filter
