// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"cgmatch/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input files
	Input  string // typing pipeline output (results_alleles.tsv)
	Ref    string // reference profile table (profiles.list)
	HierCC string // type-to-hierCC lookup table
	Output string // result table; "-" writes to stdout

	// Matching
	ChunkSize int
	Threads   int

	// Run config / output shape
	Config     string
	Confidence bool
	Header     bool // true unless --no-header
	Quiet      bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: assign cgMLST types and hierCC codes to allelic profiles

Matches each isolate in a typing-pipeline output table against a
reference cgMLST profile table, streamed in fixed-size chunks, and joins
the winning type to its hierarchical cluster codes.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "input", "", "typing output table (TSV, one row per isolate) [*]")
	fs.StringVar(&opt.Ref, "profiles", "", "reference cgMLST profile table (TSV) [*]")
	fs.StringVar(&opt.HierCC, "st-to-hiercc", "", "type-to-hierCC lookup table (TSV) [*]")
	fs.StringVar(&opt.Output, "output", "-", "output table path ('-' = stdout) [-]")

	fs.IntVar(&opt.ChunkSize, "chunk-size", 0, "reference rows per chunk (0 = default 10000) [0]")
	fs.IntVar(&opt.Threads, "threads", 1, "isolates matched in parallel (0 = all CPUs) [1]")

	fs.StringVar(&opt.Config, "config", "", "optional YAML run config")
	fs.BoolVar(&opt.Confidence, "confidence", false, "append a confidence_level column [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "log errors only [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	switch {
	case opt.Input == "":
		return opt, errors.New("--input is required")
	case opt.Ref == "":
		return opt, errors.New("--profiles is required")
	case opt.HierCC == "":
		return opt, errors.New("--st-to-hiercc is required")
	}
	if opt.ChunkSize < 0 {
		return opt, errors.New("--chunk-size must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	return opt, nil
}
