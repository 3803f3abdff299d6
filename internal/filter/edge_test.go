package filter

import (
	"testing"

	"github.com/gogpu/imgfilter/internal/image"
	"github.com/gogpu/imgfilter/internal/parallel"
)

func TestEdgeDetect_BorderUntouched(t *testing.T) {
	const fill = 0x0a0b0c0d

	for _, size := range [][2]int{{1, 1}, {2, 2}, {3, 3}, {5, 4}, {16, 9}} {
		w, h := size[0], size[1]
		src := noiseBuffer(t, w, h)
		dst := newTestBuffer(t, w, h, fill)

		runBands(src, dst, EdgeDetect, 4)

		for y := range h {
			for x := range w {
				border := x == 0 || y == 0 || x == w-1 || y == h-1
				if border && dst.At(x, y) != fill {
					t.Errorf("%dx%d: border (%d, %d) = %#08x, want fill", w, h, x, y, dst.At(x, y))
				}
				if !border && dst.At(x, y) == fill {
					t.Errorf("%dx%d: interior (%d, %d) not written", w, h, x, y)
				}
			}
		}
	}
}

func TestEdgeDetect_Magnitude(t *testing.T) {
	// 4x3 grays:
	//   0  30  90 0
	//  10 200 255 0
	//   0   0   0 0
	grays := [][]uint8{
		{0, 30, 90, 0},
		{10, 200, 255, 0},
		{0, 0, 0, 0},
	}
	src := newTestBuffer(t, 4, 3, 0)
	for y, row := range grays {
		for x, g := range row {
			src.Row(y)[x] = image.Pack(255, g, g, g)
		}
	}
	dst := newTestBuffer(t, 4, 3, 0)

	EdgeDetect(src, dst, wholeImage(src))

	// (1,1): |200-255| + |200-0| = 255
	// (2,1): |255-0| + |255-0| = 510, clamped to 255
	want := map[[2]int]uint8{{1, 1}: 255, {2, 1}: 255}
	for pos, m := range want {
		got := dst.At(pos[0], pos[1])
		if got != image.Pack(255, m, m, m) {
			t.Errorf("(%d, %d) = %#08x, want %#08x", pos[0], pos[1], got, image.Pack(255, m, m, m))
		}
	}
}

func TestEdgeDetect_Gradient(t *testing.T) {
	// Horizontal ramp: gray(x) = 10x, so dx = -10 and dy = 0 everywhere.
	src := newTestBuffer(t, 6, 5, 0)
	for y := range 5 {
		for x := range 6 {
			g := uint8(10 * x)
			src.Row(y)[x] = image.Pack(255, g, g, g)
		}
	}
	dst := newTestBuffer(t, 6, 5, 0)

	runBands(src, dst, EdgeDetect, 2)

	for y := 1; y < 4; y++ {
		for x := 1; x < 5; x++ {
			if got := dst.At(x, y); got != image.Pack(255, 10, 10, 10) {
				t.Errorf("(%d, %d) = %#08x, want %#08x", x, y, got, image.Pack(255, 10, 10, 10))
			}
		}
	}
}

func TestEdgeDetect_FlatIsBlack(t *testing.T) {
	src := newTestBuffer(t, 8, 8, image.Pack(255, 77, 77, 77))
	dst := newTestBuffer(t, 8, 8, 0)

	runBands(src, dst, EdgeDetect, 4)

	for y := 1; y < 7; y++ {
		for x := 1; x < 7; x++ {
			if got := dst.At(x, y); got != image.Pack(255, 0, 0, 0) {
				t.Errorf("(%d, %d) = %#08x, want opaque black", x, y, got)
			}
		}
	}
}

func TestEdgeDetect_IndependentOfBandCount(t *testing.T) {
	src := noiseBuffer(t, 23, 37)

	ref := newTestBuffer(t, 23, 37, 0)
	EdgeDetect(src, ref, wholeImage(src))

	for n := 1; n <= 9; n++ {
		dst := newTestBuffer(t, 23, 37, 0)
		runBands(src, dst, EdgeDetect, n)
		if !dst.Equal(ref) {
			t.Errorf("%d bands produced a different image than 1 band", n)
		}
	}
}

func TestEdgeDetect_MagnitudeInRange(t *testing.T) {
	src := noiseBuffer(t, 31, 29)
	dst := newTestBuffer(t, 31, 29, 0)

	runBands(src, dst, EdgeDetect, 4)

	for y := 1; y < 28; y++ {
		for x := 1; x < 30; x++ {
			a, r, g, b := image.Unpack(dst.At(x, y))
			if a != 255 || r != g || g != b {
				t.Fatalf("(%d, %d) = (%d, %d, %d, %d), want opaque gray", x, y, a, r, g, b)
			}
		}
	}
}

func TestEdgeDetect_EmptyBand(t *testing.T) {
	src := noiseBuffer(t, 5, 5)
	dst := newTestBuffer(t, 5, 5, 0)

	EdgeDetect(src, dst, parallel.Band{StartY: 0, EndY: 1})
	EdgeDetect(src, dst, parallel.Band{StartY: 4, EndY: 5})

	for i, p := range dst.Pix() {
		if p != 0 {
			t.Fatalf("Pix()[%d] = %#08x, want 0 for border-only bands", i, p)
		}
	}
}

func BenchmarkEdgeDetect_1080p(b *testing.B) {
	src := noiseBuffer(b, 1920, 1080)
	dst := newTestBuffer(b, 1920, 1080, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EdgeDetect(src, dst, wholeImage(src))
	}
}
