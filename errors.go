package imgfilter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/imgfilter/internal/image"
)

// Errors returned by imgfilter. Test for them with errors.Is.
var (
	// ErrNoImageLoaded is returned when an operation needs an image and none
	// is present.
	ErrNoImageLoaded = errors.New("imgfilter: no image loaded")

	// ErrInvalidParameter is returned when a threshold, size, angle or file
	// name is out of range or cannot be parsed.
	ErrInvalidParameter = errors.New("imgfilter: invalid parameter")

	// ErrUnsupportedFormat is returned when an input file extension is not
	// recognized.
	ErrUnsupportedFormat = image.ErrUnsupportedFormat

	// ErrProcessing is returned when a filter job fails. The concrete error
	// is a *ProcessingError carrying the cause.
	ErrProcessing = errors.New("imgfilter: processing failed")

	// ErrIO is returned when decoding, encoding or file access fails.
	ErrIO = errors.New("imgfilter: i/o error")

	// ErrNotModified is returned by Session.Save before any operation has
	// been applied to the loaded image.
	ErrNotModified = errors.New("imgfilter: no operation applied")
)

// ProcessingError reports a filter job that faulted while its bands were
// running. The partial destination buffer is discarded.
type ProcessingError struct {
	// Filter is the filter that was running.
	Filter FilterKind

	// Width and Height are the dimensions of the source image.
	Width, Height int

	// Err is the original cause, typically a recovered panic.
	Err error
}

// Error implements the error interface.
func (e *ProcessingError) Error() string {
	return fmt.Sprintf("imgfilter: %s filter failed on %dx%d image: %v", e.Filter, e.Width, e.Height, e.Err)
}

// Unwrap makes both ErrProcessing and the cause visible to errors.Is and
// errors.As.
func (e *ProcessingError) Unwrap() []error {
	return []error{ErrProcessing, e.Err}
}

// invalidParamf wraps ErrInvalidParameter with a formatted detail.
func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// Message turns an error returned by this package into a single sentence
// suitable for showing to the user. It returns "" for a nil error.
func Message(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNoImageLoaded):
		return "No image to process: load an image first."
	case errors.Is(err, ErrInvalidParameter):
		return withDetail("Invalid parameter", err, ErrInvalidParameter)
	case errors.Is(err, ErrUnsupportedFormat):
		return "Unsupported file format: only JPEG, PNG, BMP, TIFF and WebP images can be loaded."
	case errors.Is(err, ErrNotModified):
		return "Nothing to save: no operation has been applied to the image."
	case errors.Is(err, ErrProcessing):
		return "The operation failed and its result was discarded."
	case errors.Is(err, ErrIO):
		return withDetail("Could not read or write the image", err, ErrIO)
	default:
		return "Unexpected error: " + err.Error() + "."
	}
}

// withDetail appends the text that follows sentinel in err, if any, to
// sentence.
func withDetail(sentence string, err, sentinel error) string {
	msg, prefix := err.Error(), sentinel.Error()+": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return sentence + ": " + msg[i+len(prefix):] + "."
	}
	return sentence + "."
}
