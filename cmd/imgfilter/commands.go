package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/imgfilter"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		kind      filterValue
		threshold int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "apply --filter negative|threshold|edge [-o OUT] IN...",
		Short: "Apply a pixel filter to one or more images",
		Long: `Apply a pixel filter to one or more images.

With a single input, -o names the output file. With several inputs, the
images are processed concurrently and -o names the directory receiving
<stem>-<filter>.jpg for each input. An input of - reads the image from
standard input.`,
		Args: inputArgs(1, -1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind.kind == imgfilter.FilterUnknown {
				return fmt.Errorf("%w: --filter is required", imgfilter.ErrInvalidParameter)
			}
			params := imgfilter.Params{Threshold: threshold}
			op := func(s *imgfilter.Session) error { return s.Apply(kind.kind, params) }

			if len(args) == 1 {
				out := output
				if out == "" {
					out = defaultOutput(args[0], kind.kind.String())
				}
				return a.process(cmd, args[0], out, op)
			}
			return a.batch(cmd, args, output, kind.kind.String(), op)
		},
	}

	f := cmd.Flags()
	f.Var(&kind, "filter", "filter to apply: negative, threshold or edge")
	f.IntVar(&threshold, "threshold", 128, "gray level (0-255) at or above which threshold outputs white")
	f.StringVarP(&output, "output", "o", "", "output file, or directory with several inputs")
	return cmd
}

func newRotateCmd(a *app) *cobra.Command {
	var (
		angle  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "rotate --angle 90|-90 [-o OUT] IN",
		Short: "Rotate an image a quarter turn",
		Args:  inputArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output
			if out == "" {
				out = defaultOutput(args[0], "rotated")
			}
			return a.process(cmd, args[0], out, func(s *imgfilter.Session) error {
				return s.Rotate(angle)
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&angle, "angle", 90, "90 rotates clockwise, -90 counter-clockwise")
	f.StringVarP(&output, "output", "o", "", "output file")
	return cmd
}

func newScaleCmd(a *app) *cobra.Command {
	var (
		width, height int
		interp        string
		output        string
	)

	cmd := &cobra.Command{
		Use:   "scale [--width W] [--height H] [-o OUT] IN",
		Short: "Resize an image",
		Long: `Resize an image to at most 3000x3000 pixels.

Leave one of --width or --height at 0 to keep the aspect ratio.`,
		Args: inputArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := imgfilter.ParseInterpolation(interp)
			if err != nil {
				return err
			}
			if err := imgfilter.ValidateScale(width, height); err != nil {
				return err
			}
			out := output
			if out == "" {
				out = defaultOutput(args[0], "scaled")
			}
			return a.process(cmd, args[0], out, func(s *imgfilter.Session) error {
				return s.Scale(width, height)
			}, imgfilter.WithInterpolation(mode))
		},
	}

	f := cmd.Flags()
	f.IntVar(&width, "width", 0, "target width (0 keeps the aspect ratio)")
	f.IntVar(&height, "height", 0, "target height (0 keeps the aspect ratio)")
	f.StringVar(&interp, "interp", "catmullrom", "resampling: catmullrom, bilinear or nearest")
	f.StringVarP(&output, "output", "o", "", "output file")
	return cmd
}

// process loads in, runs op and saves the result to out.
func (a *app) process(cmd *cobra.Command, in, out string, op func(*imgfilter.Session) error, opts ...imgfilter.SessionOption) error {
	s := a.newSession(opts...)
	load := func() error { return s.Load(in) }
	if in == stdinArg {
		load = func() error { return s.LoadReader("stdin", cmd.InOrStdin()) }
	}
	if err := load(); err != nil {
		return err
	}
	if err := op(s); err != nil {
		return err
	}
	saved, err := s.Save(out)
	if err != nil {
		return err
	}
	a.mu.Lock()
	fmt.Fprintln(cmd.OutOrStdout(), saved)
	a.mu.Unlock()
	return nil
}

// batch processes every input concurrently on the shared executor. At most
// --workers images are in flight. The first error is returned after all
// inputs have been attempted.
func (a *app) batch(cmd *cobra.Command, inputs []string, dir, suffix string, op func(*imgfilter.Session) error) error {
	if dir != "" {
		st, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("%w: output directory: %w", imgfilter.ErrIO, err)
		}
		if !st.IsDir() {
			return fmt.Errorf("%w: -o must be a directory when several inputs are given", imgfilter.ErrInvalidParameter)
		}
	}

	limit := a.workers
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	outputs := lo.Map(inputs, func(in string, _ int) string {
		out := defaultOutput(in, suffix)
		if dir != "" {
			out = filepath.Join(dir, filepath.Base(out))
		}
		return out
	})
	if dups := lo.FindDuplicates(outputs); len(dups) > 0 {
		return fmt.Errorf("%w: several inputs would be saved as %s", imgfilter.ErrInvalidParameter, dups[0])
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, in := range inputs {
		out := outputs[i]
		g.Go(func() error {
			if err := a.process(cmd, in, out, op); err != nil {
				imgfilter.Logger().Error("batch item failed", "input", in, "err", err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}
