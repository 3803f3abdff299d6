package imgfilter

import (
	"os"
	"path/filepath"
	"testing"
)

// solidBuffer returns a w×h buffer filled with argb.
func solidBuffer(t testing.TB, w, h int, argb uint32) *PixelBuffer {
	t.Helper()

	buf, err := NewPixelBuffer(w, h)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	buf.Fill(argb)
	return buf
}

// noiseBuffer returns a w×h buffer of deterministic pseudo-random pixels
// with varying alpha.
func noiseBuffer(t testing.TB, w, h int, seed uint32) *PixelBuffer {
	t.Helper()

	buf, err := NewPixelBuffer(w, h)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	x := seed | 1
	pix := buf.Pix()
	for i := range pix {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		pix[i] = x
	}
	return buf
}

// writePNG stores buf as a PNG file in a fresh temp directory and returns
// its path.
func writePNG(t *testing.T, name string, buf *PixelBuffer) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if err := buf.EncodePNG(f); err != nil {
		_ = f.Close()
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
	return path
}
