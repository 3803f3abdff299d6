package filter

import (
	"testing"

	"github.com/gogpu/imgfilter/internal/image"
	"github.com/gogpu/imgfilter/internal/parallel"
)

// Test helper functions shared across filter tests.

// newTestBuffer creates a buffer filled with argb.
func newTestBuffer(t testing.TB, w, h int, argb uint32) *image.Buffer {
	t.Helper()

	b, err := image.NewBuffer(w, h)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d) error = %v", w, h, err)
	}
	b.Fill(argb)
	return b
}

// noiseBuffer creates a buffer with deterministic pseudo-random samples.
func noiseBuffer(t testing.TB, w, h int) *image.Buffer {
	t.Helper()

	b := newTestBuffer(t, w, h, 0)
	state := uint32(2463534242)
	for i := range b.Pix() {
		// xorshift32
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		b.Pix()[i] = state
	}
	return b
}

// runBands applies k to every band of an n-way partition, sequentially.
func runBands(src, dst *image.Buffer, k Kernel, n int) {
	for _, band := range parallel.Partition(src.Height(), n) {
		k(src, dst, band)
	}
}

// wholeImage returns a single band covering every row of b.
func wholeImage(b *image.Buffer) parallel.Band {
	return parallel.Band{StartY: 0, EndY: b.Height()}
}
