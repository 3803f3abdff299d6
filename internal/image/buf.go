// Package image provides the pixel buffer used by imgfilter together with its
// codec and geometry helpers.
//
// Pixels are stored as packed 32-bit ARGB samples in row-major order, the
// layout the filter kernels read and write.
package image

import (
	"errors"
	"slices"
)

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("image: invalid dimensions")

// Buffer is a W×H image of packed ARGB samples (a<<24 | r<<16 | g<<8 | b).
//
// Thread safety: Buffer is safe for concurrent read access. Concurrent writes
// are safe as long as each writer stays within its own rows.
type Buffer struct {
	pix    []uint32
	width  int
	height int
}

// NewBuffer creates a zero-filled buffer (transparent black).
// Returns ErrInvalidDimensions if width or height is not positive.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Buffer{
		pix:    make([]uint32, width*height),
		width:  width,
		height: height,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		pix:    slices.Clone(b.pix),
		width:  b.width,
		height: b.height,
	}
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the image dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// IsEmpty returns true if the buffer is nil or has zero dimensions.
func (b *Buffer) IsEmpty() bool {
	return b == nil || b.width == 0 || b.height == 0 || len(b.pix) == 0
}

// Pix returns the underlying samples.
func (b *Buffer) Pix() []uint32 {
	return b.pix
}

// Row returns the samples of row y, or nil if y is out of bounds.
func (b *Buffer) Row(y int) []uint32 {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.width
	return b.pix[start : start+b.width]
}

// At returns the ARGB sample at (x, y), or 0 if out of bounds.
func (b *Buffer) At(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// Fill sets every pixel to argb.
func (b *Buffer) Fill(argb uint32) {
	if argb == 0 {
		clear(b.pix)
		return
	}
	for i := range b.pix {
		b.pix[i] = argb
	}
}

// Equal reports whether both buffers have the same size and samples.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.width == other.width && b.height == other.height && slices.Equal(b.pix, other.pix)
}

// Pack combines four 8-bit channels into an ARGB sample.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits an ARGB sample into its channels.
func Unpack(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Gray returns the truncated mean of the red, green and blue channels.
func Gray(p uint32) int {
	r := int(p>>16) & 0xff
	g := int(p>>8) & 0xff
	b := int(p) & 0xff
	return (r + g + b) / 3
}
