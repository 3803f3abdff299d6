package image

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
)

// ErrInvalidAngle is returned by Rotate for angles other than ±90.
var ErrInvalidAngle = errors.New("image: rotation must be 90 or -90 degrees")

// Rotate returns a new buffer rotated by a quarter turn. Angle 90 turns the
// image clockwise, -90 counter-clockwise. The result is H×W.
func Rotate(src *Buffer, angle int) (*Buffer, error) {
	if angle != 90 && angle != -90 {
		return nil, ErrInvalidAngle
	}

	w, h := src.Bounds()
	dst, err := NewBuffer(h, w)
	if err != nil {
		return nil, err
	}

	for y := range h {
		row := src.Row(y)
		for x, p := range row {
			if angle == 90 {
				dst.pix[x*h+(h-1-y)] = p
			} else {
				dst.pix[(w-1-x)*h+y] = p
			}
		}
	}

	return dst, nil
}

// Scale returns a new width×height buffer resampled from src.
func Scale(src *Buffer, width, height int, mode InterpolationMode) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	from := src.toNRGBA()
	to := image.NewNRGBA(image.Rect(0, 0, width, height))
	mode.interpolator().Scale(to, to.Bounds(), from, from.Bounds(), xdraw.Src, nil)

	return FromStdImage(to), nil
}

// FitSize resolves a requested size where one dimension may be 0, meaning
// "keep the aspect ratio of src". Both zero is invalid.
func FitSize(src *Buffer, width, height int) (int, int, error) {
	if width < 0 || height < 0 || (width == 0 && height == 0) {
		return 0, 0, ErrInvalidDimensions
	}

	w, h := src.Bounds()
	switch {
	case width == 0:
		width = max(1, (w*height+h/2)/h)
	case height == 0:
		height = max(1, (h*width+w/2)/w)
	}
	return width, height, nil
}
