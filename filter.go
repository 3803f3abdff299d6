package imgfilter

import (
	"strings"

	"github.com/gogpu/imgfilter/internal/filter"
)

// FilterKind selects the pixel filter a job runs.
type FilterKind uint8

const (
	// FilterUnknown is the zero value and is never valid.
	FilterUnknown FilterKind = iota

	// Negative inverts red, green and blue and keeps alpha.
	Negative

	// Threshold turns every pixel opaque white or black by comparing the
	// truncated RGB mean with Params.Threshold.
	Threshold

	// EdgeDetect writes the right/down gradient magnitude of every interior
	// pixel. Border pixels keep the destination's initial fill.
	EdgeDetect
)

// String returns the command line name of the filter.
func (k FilterKind) String() string {
	switch k {
	case Negative:
		return "negative"
	case Threshold:
		return "threshold"
	case EdgeDetect:
		return "edge"
	default:
		return "unknown"
	}
}

// ParseFilterKind parses a filter name, case-insensitively. Accepted names
// are "negative", "threshold" and "edge" ("edge-detect" and "edgedetect" are
// aliases).
func ParseFilterKind(s string) (FilterKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "negative":
		return Negative, nil
	case "threshold":
		return Threshold, nil
	case "edge", "edge-detect", "edgedetect":
		return EdgeDetect, nil
	default:
		return FilterUnknown, invalidParamf("unknown filter %q (want negative, threshold or edge)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k FilterKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FilterKind) UnmarshalText(text []byte) error {
	parsed, err := ParseFilterKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Params holds filter parameters. Only Threshold uses them.
type Params struct {
	// Threshold is the gray level in [0, 255] at or above which a pixel
	// becomes white.
	Threshold int
}

// validate checks params for kind.
func (p Params) validate(kind FilterKind) error {
	switch kind {
	case Negative, EdgeDetect:
		return nil
	case Threshold:
		return ValidateThreshold(p.Threshold)
	default:
		return invalidParamf("unknown filter %d", uint8(kind))
	}
}

// kernel returns the band kernel for kind. params must be valid.
func (p Params) kernel(kind FilterKind) filter.Kernel {
	switch kind {
	case Threshold:
		return filter.Threshold(p.Threshold)
	case EdgeDetect:
		return filter.EdgeDetect
	default:
		return filter.Negative
	}
}
