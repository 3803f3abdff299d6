package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/imgfilter"
)

// filterValue is a pflag.Value for --filter.
type filterValue struct {
	kind imgfilter.FilterKind
}

var _ pflag.Value = (*filterValue)(nil)

func (v *filterValue) String() string {
	if v.kind == imgfilter.FilterUnknown {
		return ""
	}
	return v.kind.String()
}

func (v *filterValue) Set(s string) error {
	return v.kind.UnmarshalText([]byte(s))
}

func (v *filterValue) Type() string { return "filter" }

// inputArgs accepts between minN and maxN positional inputs; maxN < 0 means
// no upper bound.
func inputArgs(minN, maxN int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < minN || (maxN >= 0 && len(args) > maxN) {
			if minN == maxN {
				return fmt.Errorf("%w: expected %d input file, got %d", imgfilter.ErrInvalidParameter, minN, len(args))
			}
			return fmt.Errorf("%w: expected at least %d input file, got %d", imgfilter.ErrInvalidParameter, minN, len(args))
		}
		return nil
	}
}

// stdinArg is the input name that reads the image from standard input.
const stdinArg = "-"

// defaultOutput names the output for in next to it: <dir>/<stem>-<suffix>.jpg.
// Standard input is saved as stdin-<suffix>.jpg in the working directory.
func defaultOutput(in, suffix string) string {
	if in == stdinArg {
		in = "stdin"
	}
	base := filepath.Base(in)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(in), stem+"-"+suffix+imgfilter.SaveExtension)
}
