package imgfilter

import (
	"time"

	"github.com/gogpu/imgfilter/internal/filter"
	"github.com/gogpu/imgfilter/internal/image"
	"github.com/gogpu/imgfilter/internal/parallel"
)

// Executor runs pixel filters by splitting the image into horizontal bands
// and processing them on a shared worker pool.
//
// Each call to Run allocates a fresh destination buffer, waits for every band
// to finish and only then returns it, so the caller never observes a partially
// written result. The source buffer is never modified.
//
// Executor is safe for concurrent use. Concurrent jobs share the pool and
// each waits only for its own bands.
type Executor struct {
	pool       *parallel.WorkerPool
	bands      int
	borderFill uint32
}

// NewExecutor creates an Executor and starts its worker pool.
// Call Close to stop the workers when the Executor is no longer needed.
func NewExecutor(opts ...ExecutorOption) *Executor {
	o := defaultExecutorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Executor{
		pool:       parallel.NewWorkerPool(o.workers),
		bands:      o.bands,
		borderFill: o.borderFill,
	}
}

// Workers returns the number of goroutines in the pool.
func (e *Executor) Workers() int {
	return e.pool.Workers()
}

// Bands returns the number of bands each job is split into.
func (e *Executor) Bands() int {
	return e.bands
}

// Run applies the filter kind to src and returns a new buffer of the same
// size.
//
// Errors:
//   - ErrNoImageLoaded if src is nil or has no pixels
//   - ErrInvalidParameter if params are invalid for kind
//   - *ProcessingError (matching ErrProcessing) if any band faulted or the
//     Executor was closed
func (e *Executor) Run(src *PixelBuffer, kind FilterKind, params Params) (*PixelBuffer, error) {
	if src.IsEmpty() {
		return nil, ErrNoImageLoaded
	}
	if err := params.validate(kind); err != nil {
		Logger().Warn("filter rejected", "filter", kind, "err", err)
		return nil, err
	}

	return e.run(src, kind, params.kernel(kind))
}

// run executes k over every band of src. All bands complete before run
// returns, whether or not one of them failed.
func (e *Executor) run(src *PixelBuffer, kind FilterKind, k filter.Kernel) (*PixelBuffer, error) {
	start := time.Now()
	w, h := src.Bounds()
	log := jobLogger(kind, w, h)

	dst, err := image.NewBuffer(w, h)
	if err != nil {
		return nil, &ProcessingError{Filter: kind, Width: w, Height: h, Err: err}
	}
	if kind == EdgeDetect {
		dst.Fill(e.borderFill)
	}

	bands := parallel.Partition(h, e.bands)
	work := make([]func() error, len(bands))
	for i, band := range bands {
		work[i] = func() error {
			k(src, dst, band)
			return nil
		}
	}

	if err := e.pool.ExecuteAll(work); err != nil {
		perr := &ProcessingError{Filter: kind, Width: w, Height: h, Err: err}
		log.Error("filter job failed", "bands", len(bands), "err", err)
		return nil, perr
	}

	log.Debug("filter job done",
		"bands", len(bands),
		"workers", e.pool.Workers(),
		"elapsed", time.Since(start))

	return dst, nil
}

// Close stops the worker pool and waits for queued bands to drain.
// Jobs submitted after Close fail with ErrProcessing. Close is idempotent.
func (e *Executor) Close() {
	e.pool.Close()
}
