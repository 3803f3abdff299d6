// Command imgfilter applies pixel filters, rotations and scaling to images.
//
// Usage:
//
//	imgfilter [--workers N] [--bands N] [--quality Q] [-v] [--log-file F] <command>
//
//	imgfilter apply --filter threshold --threshold 128 -o out.jpg photo.jpg
//	imgfilter apply --filter negative -o outdir a.jpg b.png c.bmp
//	imgfilter rotate --angle -90 -o turned.jpg photo.jpg
//	imgfilter scale --width 800 -o small.jpg photo.jpg
//	curl -s https://example.com/cat.png | imgfilter apply --filter edge -o cat -
//
// An input of - reads the image from standard input.
//
// Errors are printed as a single line and the exit status is 1.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/gogpu/imgfilter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(stderr, imgfilter.Message(err))
		return 1
	}
	return 0
}

// app holds the global flags and the resources built from them.
type app struct {
	workers int
	bands   int
	quality int
	verbose bool
	logFile string

	exec *imgfilter.Executor
	log  *os.File

	mu sync.Mutex // serializes output lines from batch items
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "imgfilter",
		Short:         "Apply pixel filters to images on a parallel worker pool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&a.workers, "workers", imgfilter.DefaultWorkers, "worker goroutines (0 = GOMAXPROCS, at most 1024)")
	pf.IntVar(&a.bands, "bands", imgfilter.DefaultBands, "horizontal bands per filter job (1-1024)")
	pf.IntVar(&a.quality, "quality", imgfilter.DefaultJPEGQuality, "JPEG output quality (1-100)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr (or --log-file)")
	pf.StringVar(&a.logFile, "log-file", "", "append logs to this file instead of stderr")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", imgfilter.ErrInvalidParameter, err)
	})

	root.AddCommand(newApplyCmd(a), newRotateCmd(a), newScaleCmd(a))
	return root
}

// setup installs the logger and starts the shared executor.
func (a *app) setup(stderr io.Writer) error {
	if a.quality < 1 || a.quality > 100 {
		return fmt.Errorf("%w: quality must be between 1 and 100, got %d", imgfilter.ErrInvalidParameter, a.quality)
	}
	if a.workers > imgfilter.MaxWorkers {
		return fmt.Errorf("%w: workers must be at most %d, got %d", imgfilter.ErrInvalidParameter, imgfilter.MaxWorkers, a.workers)
	}
	if a.bands < 1 || a.bands > imgfilter.MaxBands {
		return fmt.Errorf("%w: bands must be between 1 and %d, got %d", imgfilter.ErrInvalidParameter, imgfilter.MaxBands, a.bands)
	}

	// Logging is off unless -v or --log-file is given.
	if a.verbose || a.logFile != "" {
		out := stderr
		if a.logFile != "" {
			f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("%w: open log file: %w", imgfilter.ErrIO, err)
			}
			a.log = f
			out = f
		}

		level := slog.LevelInfo
		if a.verbose {
			level = slog.LevelDebug
		}
		imgfilter.SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	}

	a.exec = imgfilter.NewExecutor(imgfilter.WithWorkers(a.workers), imgfilter.WithBands(a.bands))
	return nil
}

func (a *app) close() {
	if a.exec != nil {
		a.exec.Close()
	}
	imgfilter.SetLogger(nil)
	if a.log != nil {
		_ = a.log.Close()
	}
}

func (a *app) newSession(opts ...imgfilter.SessionOption) *imgfilter.Session {
	return imgfilter.NewSession(a.exec, append([]imgfilter.SessionOption{imgfilter.WithJPEGQuality(a.quality)}, opts...)...)
}
