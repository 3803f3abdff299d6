package imgfilter

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/gogpu/imgfilter/internal/image"
)

// Session holds the state of one editing session: the loaded source image,
// the latest result and whether any operation has been applied since the
// last load.
//
// Filters always read the loaded source, so applying a second filter replaces
// the first rather than stacking on it. Rotate and Scale read the current
// image (the result if there is one, otherwise the source).
//
// Session is safe for concurrent use; operations are serialized.
type Session struct {
	exec *Executor
	opts sessionOptions

	mu      sync.Mutex
	path    string
	source  *PixelBuffer
	result  *PixelBuffer
	applied bool
}

// NewSession creates an empty Session that runs filters on exec.
// The Session does not own exec and never closes it.
func NewSession(exec *Executor, opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{exec: exec, opts: o}
}

// Load decodes the image at path and makes it the source. The result and the
// applied flag are cleared.
func (s *Session) Load(path string) error {
	if !image.Supported(path) {
		err := fmt.Errorf("imgfilter: load %s: %w: %q", path, ErrUnsupportedFormat, filepath.Ext(path))
		Logger().Warn("load rejected", "path", path, "err", err)
		return err
	}

	buf, err := image.Load(path)
	if err != nil {
		Logger().Error("load failed", "path", path, "err", err)
		return fmt.Errorf("%w: load %s: %w", ErrIO, path, err)
	}
	return s.loaded(path, buf)
}

// LoadReader decodes an image of any supported format from r and makes it
// the source. name is only used in log records and returned by Path.
func (s *Session) LoadReader(name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		Logger().Error("load failed", "path", name, "err", err)
		return fmt.Errorf("%w: read %s: %w", ErrIO, name, err)
	}

	buf, err := image.LoadFromBytes(data)
	switch {
	case errors.Is(err, image.ErrEmptyData):
		Logger().Warn("load rejected", "path", name, "err", err)
		return fmt.Errorf("%w: %s is empty", ErrNoImageLoaded, name)
	case errors.Is(err, ErrUnsupportedFormat):
		Logger().Warn("load rejected", "path", name, "err", err)
		return fmt.Errorf("imgfilter: load %s: %w", name, err)
	case err != nil:
		Logger().Error("load failed", "path", name, "err", err)
		return fmt.Errorf("%w: load %s: %w", ErrIO, name, err)
	}
	return s.loaded(name, buf)
}

func (s *Session) loaded(path string, buf *PixelBuffer) error {
	if buf.IsEmpty() {
		return fmt.Errorf("%w: %s has no pixels", ErrNoImageLoaded, path)
	}

	s.mu.Lock()
	s.path = path
	s.source = buf
	s.result = nil
	s.applied = false
	s.mu.Unlock()

	Logger().Info("image loaded", "path", path, "width", buf.Width(), "height", buf.Height())
	return nil
}

// SetSource makes buf the source without reading a file. The result and the
// applied flag are cleared.
func (s *Session) SetSource(buf *PixelBuffer) error {
	if buf.IsEmpty() {
		return ErrNoImageLoaded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = ""
	s.source = buf
	s.result = nil
	s.applied = false
	return nil
}

// Apply runs a filter over the source and replaces the result.
// On failure the previous result is kept.
func (s *Session) Apply(kind FilterKind, params Params) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.source == nil {
		return ErrNoImageLoaded
	}
	out, err := s.exec.Run(s.source, kind, params)
	if err != nil {
		return err
	}

	s.result = out
	s.applied = true
	Logger().Info("filter applied", "filter", kind, "path", s.path)
	return nil
}

// Rotate turns the current image by angle degrees (90 clockwise, -90
// counter-clockwise) and replaces the result.
func (s *Session) Rotate(angle int) error {
	if err := ValidateRotation(angle); err != nil {
		Logger().Warn("rotate rejected", "angle", angle, "err", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	if cur == nil {
		return ErrNoImageLoaded
	}
	out, err := image.Rotate(cur, angle)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	s.result = out
	s.applied = true
	Logger().Info("image rotated", "angle", angle, "width", out.Width(), "height", out.Height())
	return nil
}

// Scale resizes the current image to w×h and replaces the result.
// A zero in one dimension keeps the aspect ratio.
func (s *Session) Scale(w, h int) error {
	if err := ValidateScale(w, h); err != nil {
		Logger().Warn("scale rejected", "width", w, "height", h, "err", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	if cur == nil {
		return ErrNoImageLoaded
	}
	tw, th, err := image.FitSize(cur, w, h)
	if err != nil {
		return invalidParamf("%v", err)
	}
	out, err := image.Scale(cur, tw, th, s.opts.interp)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	s.result = out
	s.applied = true
	Logger().Info("image scaled", "width", tw, "height", th, "interp", s.opts.interp)
	return nil
}

// Save encodes the result as JPEG and returns the path actually written,
// which is path normalized by NormalizeSaveName.
func (s *Session) Save(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.applied || s.result == nil {
		Logger().Warn("save rejected", "path", path, "err", ErrNotModified)
		return "", ErrNotModified
	}
	name, err := NormalizeSaveName(path)
	if err != nil {
		Logger().Warn("save rejected", "path", path, "err", err)
		return "", err
	}
	if err := s.result.SaveJPEG(name, s.opts.quality); err != nil {
		Logger().Error("save failed", "path", name, "err", err)
		return "", fmt.Errorf("%w: save %s: %w", ErrIO, name, err)
	}

	Logger().Info("image saved", "path", name, "quality", s.opts.quality)
	return name, nil
}

// Source returns the loaded image, or nil.
func (s *Session) Source() *PixelBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Result returns the latest result, or nil if nothing has been applied.
func (s *Session) Result() *PixelBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Current returns the result if there is one, otherwise the source.
func (s *Session) Current() *PixelBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Session) current() *PixelBuffer {
	if s.result != nil {
		return s.result
	}
	return s.source
}

// Applied reports whether an operation has succeeded since the last load.
func (s *Session) Applied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}

// Path returns the path of the loaded file, or "" if the source was set
// directly.
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}
