package imgfilter

import "github.com/gogpu/imgfilter/internal/parallel"

// Executor defaults.
const (
	// DefaultWorkers is the worker count of an Executor created without
	// WithWorkers.
	DefaultWorkers = 4

	// DefaultBands is the band count of an Executor created without
	// WithBands.
	DefaultBands = parallel.DefaultBands

	// MaxWorkers and MaxBands cap WithWorkers and WithBands.
	MaxWorkers = 1024
	MaxBands   = 1024
)

// ExecutorOption configures an Executor during creation.
// Use functional options to customize Executor behavior.
//
// Example:
//
//	// Default: 4 workers, 4 bands, black edge border
//	exec := imgfilter.NewExecutor()
//
//	// One band per CPU on a pool sized to GOMAXPROCS
//	exec := imgfilter.NewExecutor(imgfilter.WithWorkers(0), imgfilter.WithBands(runtime.NumCPU()))
type ExecutorOption func(*executorOptions)

// executorOptions holds optional configuration for Executor creation.
type executorOptions struct {
	workers    int
	bands      int
	borderFill uint32
}

// defaultExecutorOptions returns the default executor options.
func defaultExecutorOptions() executorOptions {
	return executorOptions{
		workers: DefaultWorkers,
		bands:   DefaultBands,
	}
}

// WithWorkers sets the number of worker goroutines in the Executor's pool.
// A value of 0 or less sizes the pool to GOMAXPROCS. Values above MaxWorkers
// are treated as MaxWorkers.
func WithWorkers(n int) ExecutorOption {
	return func(o *executorOptions) {
		o.workers = min(n, MaxWorkers)
	}
}

// WithBands sets how many horizontal bands every job is split into.
// Values are clamped to [1, MaxBands].
func WithBands(n int) ExecutorOption {
	return func(o *executorOptions) {
		o.bands = min(max(n, 1), MaxBands)
	}
}

// WithBorderFill sets the packed ARGB value EdgeDetect leaves in the
// one-pixel border it never computes. The default is 0 (transparent black).
func WithBorderFill(argb uint32) ExecutorOption {
	return func(o *executorOptions) {
		o.borderFill = argb
	}
}

// SessionOption configures a Session during creation.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	quality int
	interp  Interpolation
}

func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		quality: DefaultJPEGQuality,
		interp:  InterpCatmullRom,
	}
}

// WithJPEGQuality sets the quality used by Session.Save. Values are clamped
// to [1, 100]; 0 selects DefaultJPEGQuality.
func WithJPEGQuality(q int) SessionOption {
	return func(o *sessionOptions) {
		o.quality = q
	}
}

// WithInterpolation sets the resampling filter used by Session.Scale.
func WithInterpolation(mode Interpolation) SessionOption {
	return func(o *sessionOptions) {
		o.interp = mode
	}
}
