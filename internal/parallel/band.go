// Package parallel provides band-based parallel processing infrastructure for
// imgfilter.
//
// An image is split into a fixed number of horizontal bands that are processed
// independently on a long-lived worker pool. Key properties:
//
//   - Bands are half-open row ranges that cover [0, height) exactly once
//   - The last band absorbs the remainder of an uneven division
//   - One WorkerPool is shared by every job for the life of the process
//
// Thread safety: WorkerPool is safe for concurrent use. Band values are
// immutable.
package parallel

import "fmt"

// DefaultBands is the number of bands a job is split into when no other count
// is configured.
const DefaultBands = 4

// Band is a half-open range of image rows [StartY, EndY) owned by one task.
type Band struct {
	// StartY is the first row of the band.
	StartY int

	// EndY is one past the last row of the band.
	EndY int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	if b.EndY <= b.StartY {
		return 0
	}
	return b.EndY - b.StartY
}

// Empty reports whether the band contains no rows.
func (b Band) Empty() bool {
	return b.Rows() == 0
}

// Clamp restricts the band to [lo, hi). The result may be empty.
func (b Band) Clamp(lo, hi int) Band {
	return Band{StartY: max(b.StartY, lo), EndY: min(b.EndY, hi)}
}

// String returns the band as "[start,end)".
func (b Band) String() string {
	return fmt.Sprintf("[%d,%d)", b.StartY, b.EndY)
}

// Partition splits [0, height) into count contiguous bands.
//
// With chunk = height / count, band i covers [i*chunk, (i+1)*chunk) for every
// band but the last, which covers [(count-1)*chunk, height). When height is
// smaller than count the leading bands are empty. Exactly count bands are
// returned; a count below 1 is treated as 1 and a negative height as 0.
func Partition(height, count int) []Band {
	if count < 1 {
		count = 1
	}
	if height < 0 {
		height = 0
	}

	chunk := height / count
	bands := make([]Band, count)
	for i := range count {
		bands[i] = Band{StartY: i * chunk, EndY: (i + 1) * chunk}
	}
	bands[count-1].EndY = height

	return bands
}
