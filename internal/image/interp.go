package image

import (
	"fmt"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// InterpolationMode defines how pixels are resampled when scaling.
type InterpolationMode uint8

const (
	// InterpCatmullRom uses Catmull-Rom cubic resampling.
	// Smoothest result; the default.
	InterpCatmullRom InterpolationMode = iota

	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	InterpBilinear

	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "nearest"
	case InterpBilinear:
		return "bilinear"
	case InterpCatmullRom:
		return "catmullrom"
	default:
		return "unknown"
	}
}

// ParseInterpolation parses the String form of a mode, case-insensitively.
func ParseInterpolation(s string) (InterpolationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "catmullrom", "bicubic", "smooth":
		return InterpCatmullRom, nil
	case "bilinear":
		return InterpBilinear, nil
	case "nearest":
		return InterpNearest, nil
	default:
		return 0, fmt.Errorf("image: unknown interpolation %q", s)
	}
}

// interpolator returns the x/image scaler for the mode.
func (m InterpolationMode) interpolator() xdraw.Interpolator {
	switch m {
	case InterpNearest:
		return xdraw.NearestNeighbor
	case InterpBilinear:
		return xdraw.BiLinear
	default:
		return xdraw.CatmullRom
	}
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
