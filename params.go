package imgfilter

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Parameter limits.
const (
	MinThreshold = 0
	MaxThreshold = 255

	// MaxScaleDimension is the largest width or height Scale accepts.
	MaxScaleDimension = 3000

	// MinSaveNameLength and MaxSaveNameLength bound the rune count of a save
	// name's stem (the base name without its extension).
	MinSaveNameLength = 3
	MaxSaveNameLength = 100

	// SaveExtension is appended to save names that lack it.
	SaveExtension = ".jpg"
)

// ParseThreshold parses a decimal threshold in [MinThreshold, MaxThreshold].
func ParseThreshold(s string) (int, error) {
	t, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalidParamf("threshold %q is not an integer", s)
	}
	if err := ValidateThreshold(t); err != nil {
		return 0, err
	}
	return t, nil
}

// ValidateThreshold checks that t is in [MinThreshold, MaxThreshold].
func ValidateThreshold(t int) error {
	if t < MinThreshold || t > MaxThreshold {
		return invalidParamf("threshold must be between %d and %d, got %d", MinThreshold, MaxThreshold, t)
	}
	return nil
}

// ParseScale parses a target width and height. Each must be a decimal integer
// in [0, MaxScaleDimension] and at least one must be non-zero. A zero keeps
// the aspect ratio along that axis.
func ParseScale(width, height string) (int, int, error) {
	w, err := strconv.Atoi(strings.TrimSpace(width))
	if err != nil {
		return 0, 0, invalidParamf("width %q is not an integer", width)
	}
	h, err := strconv.Atoi(strings.TrimSpace(height))
	if err != nil {
		return 0, 0, invalidParamf("height %q is not an integer", height)
	}
	if err := ValidateScale(w, h); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// ValidateScale checks a target size. See ParseScale.
func ValidateScale(w, h int) error {
	if w < 0 || w > MaxScaleDimension || h < 0 || h > MaxScaleDimension {
		return invalidParamf("width and height must be between 0 and %d, got %dx%d", MaxScaleDimension, w, h)
	}
	if w == 0 && h == 0 {
		return invalidParamf("width and height cannot both be 0")
	}
	return nil
}

// ValidateRotation accepts 90 (clockwise) and -90 (counter-clockwise).
func ValidateRotation(angle int) error {
	if angle != 90 && angle != -90 {
		return invalidParamf("rotation must be 90 or -90 degrees, got %d", angle)
	}
	return nil
}

// NormalizeSaveName returns the path Save writes to.
//
// SaveExtension is appended unless the name already ends with it (compared
// case-insensitively). The stem, after NFC normalization, must be between
// MinSaveNameLength and MaxSaveNameLength runes long.
func NormalizeSaveName(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", invalidParamf("file name is empty")
	}

	base := filepath.Base(path)
	if !strings.HasSuffix(strings.ToLower(base), SaveExtension) {
		path += SaveExtension
		base += SaveExtension
	}

	stem := norm.NFC.String(base[:len(base)-len(SaveExtension)])
	n := utf8.RuneCountInString(stem)
	if n < MinSaveNameLength || n > MaxSaveNameLength {
		return "", invalidParamf("file name must be %d to %d characters long, got %d",
			MinSaveNameLength, MaxSaveNameLength, n)
	}
	return path, nil
}
