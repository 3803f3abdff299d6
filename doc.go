// Package imgfilter applies pixel filters to images on a bounded worker pool.
//
// # Overview
//
// imgfilter loads an image, runs one of three filters over it in parallel,
// optionally rotates or scales the result and saves it as JPEG. Every filter
// job is split into a fixed number of horizontal bands that are processed
// concurrently by a long-lived pool of goroutines. A job publishes its result
// only after every band has finished.
//
// # Quick Start
//
//	import "github.com/gogpu/imgfilter"
//
//	exec := imgfilter.NewExecutor()
//	defer exec.Close()
//
//	s := imgfilter.NewSession(exec)
//	if err := s.Load("photo.jpg"); err != nil {
//	    log.Fatal(imgfilter.Message(err))
//	}
//	if err := s.Apply(imgfilter.Threshold, imgfilter.Params{Threshold: 128}); err != nil {
//	    log.Fatal(imgfilter.Message(err))
//	}
//	if _, err := s.Save("photo-bw"); err != nil {
//	    log.Fatal(imgfilter.Message(err))
//	}
//
// # Filters
//
//   - Negative: inverts red, green and blue, keeps alpha
//   - Threshold: opaque white where the truncated RGB mean is at least the
//     threshold, opaque black elsewhere
//   - EdgeDetect: |g - g(x+1,y)| + |g - g(x,y+1)| clamped to 255, written as
//     opaque gray; the one-pixel border is left at the configured fill
//
// # Architecture
//
// The library is organized into:
//   - Public API: Executor, Session, PixelBuffer, FilterKind, Params
//   - internal/parallel: worker pool and band partitioning
//   - internal/filter: per-band kernels
//   - internal/image: pixel buffer, codecs, rotate and scale
//
// # Pixel Format
//
// Pixels are packed 32-bit ARGB (alpha in the high byte), row-major with no
// padding. Alpha is straight, not premultiplied.
//
// # Thread Safety
//
// Executor and Session are safe for concurrent use. A PixelBuffer returned by
// Run is owned by the caller.
package imgfilter
