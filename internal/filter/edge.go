package filter

import (
	"github.com/gogpu/imgfilter/internal/image"
	"github.com/gogpu/imgfilter/internal/parallel"
)

// EdgeDetect writes the gradient magnitude of every interior pixel of the
// band:
//
//	dx = gray(x, y) - gray(x+1, y)
//	dy = gray(x, y) - gray(x, y+1)
//	m  = min(255, |dx| + |dy|)
//
// as the opaque gray (255, m, m, m). Only rows [1, H-1) and columns [1, W-1)
// are written; the border keeps whatever dst was initialized with.
func EdgeDetect(src, dst *image.Buffer, band parallel.Band) {
	w, h := src.Bounds()
	band = band.Clamp(1, h-1)
	if band.Empty() || w < 3 {
		return
	}

	for y := band.StartY; y < band.EndY; y++ {
		in := src.Row(y)
		below := src.Row(y + 1)
		out := dst.Row(y)
		for x := 1; x < w-1; x++ {
			g := image.Gray(in[x])
			m := abs(g-image.Gray(in[x+1])) + abs(g-image.Gray(below[x]))
			if m > 255 {
				m = 255
			}
			v := uint8(m)
			out[x] = image.Pack(255, v, v, v)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
