package imgfilter

import (
	stdimage "image"

	"github.com/gogpu/imgfilter/internal/image"
)

// PixelBuffer is a rectangular grid of packed 32-bit ARGB pixels
// (alpha in bits 31..24, red 23..16, green 15..8, blue 7..0), stored
// row-major with no padding.
type PixelBuffer = image.Buffer

// Interpolation selects the resampling filter used when scaling.
type Interpolation = image.InterpolationMode

// Resampling filters.
const (
	InterpCatmullRom = image.InterpCatmullRom
	InterpBilinear   = image.InterpBilinear
	InterpNearest    = image.InterpNearest
)

// DefaultJPEGQuality is the quality Session.Save uses unless configured.
const DefaultJPEGQuality = image.DefaultJPEGQuality

// NewPixelBuffer allocates a zero-filled w×h buffer.
func NewPixelBuffer(w, h int) (*PixelBuffer, error) {
	buf, err := image.NewBuffer(w, h)
	if err != nil {
		return nil, invalidParamf("buffer size %dx%d: %v", w, h, err)
	}
	return buf, nil
}

// FromImage converts a standard library image to a PixelBuffer.
func FromImage(img stdimage.Image) *PixelBuffer {
	return image.FromStdImage(img)
}

// Pack combines 8-bit channels into a packed ARGB pixel.
func Pack(a, r, g, b uint8) uint32 { return image.Pack(a, r, g, b) }

// Unpack splits a packed ARGB pixel into its channels.
func Unpack(p uint32) (a, r, g, b uint8) { return image.Unpack(p) }

// ParseInterpolation parses "catmullrom", "bilinear" or "nearest".
func ParseInterpolation(s string) (Interpolation, error) {
	mode, err := image.ParseInterpolation(s)
	if err != nil {
		return mode, invalidParamf("%v", err)
	}
	return mode, nil
}
