package filter

import (
	"github.com/gogpu/imgfilter/internal/image"
	"github.com/gogpu/imgfilter/internal/parallel"
)

const (
	opaqueBlack uint32 = 0xff000000
	opaqueWhite uint32 = 0xffffffff
)

// Negative writes (a, 255-r, 255-g, 255-b) for every pixel of the band.
func Negative(src, dst *image.Buffer, band parallel.Band) {
	band = rows(src, band)
	for y := band.StartY; y < band.EndY; y++ {
		in := src.Row(y)
		out := dst.Row(y)
		for x, p := range in {
			// XOR with 0x00ffffff is 255-c for each color channel.
			out[x] = p ^ 0x00ffffff
		}
	}
}

// Threshold returns a kernel that writes opaque white where the truncated
// mean of r, g and b is at least t, and opaque black elsewhere.
// t is expected in [0, 255]; callers validate it.
func Threshold(t int) Kernel {
	return func(src, dst *image.Buffer, band parallel.Band) {
		band = rows(src, band)
		for y := band.StartY; y < band.EndY; y++ {
			in := src.Row(y)
			out := dst.Row(y)
			for x, p := range in {
				if image.Gray(p) >= t {
					out[x] = opaqueWhite
				} else {
					out[x] = opaqueBlack
				}
			}
		}
	}
}
