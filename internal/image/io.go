package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file extension is not recognized.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned by LoadFromBytes for a zero-length input.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is used when a caller passes quality 0.
const DefaultJPEGQuality = 90

// decoders maps lower-case file extensions to their decoder.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".png":  png.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
}

// Supported reports whether path has an extension Load can decode.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load loads an image from the given file path, choosing the decoder from the
// file extension. Supported extensions: .jpg .jpeg .png .bmp .tif .tiff .webp.
func Load(path string) (*Buffer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("image: decode %s: %w", strings.TrimPrefix(ext, "."), err)
	}
	return FromStdImage(img), nil
}

// LoadFromBytes decodes an image from a byte slice, auto-detecting the format.
func LoadFromBytes(data []byte) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format
// among every registered decoder. Data matching none of them yields
// ErrUnsupportedFormat.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%w: unrecognized image data", ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// SaveJPEG writes b to path as a JPEG, creating or truncating the file.
// Quality follows EncodeJPEG.
func (b *Buffer) SaveJPEG(path string, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodeJPEG(f, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodeJPEG writes b to w as a JPEG. Quality 0 selects DefaultJPEGQuality;
// anything else is clamped to 1..100.
func (b *Buffer) EncodeJPEG(w io.Writer, quality int) error {
	if quality == 0 {
		quality = DefaultJPEGQuality
	}
	quality = clamp(quality, 1, 100)

	if err := jpeg.Encode(w, b.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// EncodePNG encodes the image as PNG to the given writer. PNG is lossless.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// FromStdImage creates a Buffer from a standard library image.Image.
// Premultiplied sources are converted to straight alpha.
func FromStdImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf := &Buffer{
		pix:    make([]uint32, width*height),
		width:  width,
		height: height,
	}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := range height {
			row := src.Pix[y*src.Stride : y*src.Stride+width*4]
			dst := buf.Row(y)
			for x := range width {
				o := x * 4
				dst[x] = Pack(row[o+3], row[o], row[o+1], row[o+2])
			}
		}

	case *image.YCbCr:
		// Baseline JPEGs decode to YCbCr.
		for y := range height {
			dst := buf.Row(y)
			for x := range width {
				c := src.YCbCrAt(bounds.Min.X+x, bounds.Min.Y+y)
				r, g, bl := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
				dst[x] = Pack(255, r, g, bl)
			}
		}

	default:
		for y := range height {
			dst := buf.Row(y)
			for x := range width {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				dst[x] = Pack(c.A, c.R, c.G, c.B)
			}
		}
	}

	return buf
}

// ToStdImage converts the Buffer to an *image.NRGBA.
func (b *Buffer) ToStdImage() image.Image {
	return b.toNRGBA()
}

func (b *Buffer) toNRGBA() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		row := b.Row(y)
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x, p := range row {
			a, r, g, bl := Unpack(p)
			o := x * 4
			dst[o] = r
			dst[o+1] = g
			dst[o+2] = bl
			dst[o+3] = a
		}
	}
	return nrgba
}
