// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"collatz/internal/cliutil"
	"collatz/internal/version"
)

// Output formats accepted by --output.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputJSONL = "jsonl"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Specs      []string // positional start specs ("27", "1..100")
	StartFiles []string // --starts
	ConfigFile string

	// Computation
	Width    int
	MaxSteps uint64

	// Output
	Output     string
	Steps      bool
	Peaks      bool
	Sort       bool
	Header     bool // true unless --no-header
	MetricsOut string

	// Misc
	Quiet   bool
	Verbose bool
	Version bool

	// Set records which flags were given explicitly, keyed by canonical name.
	Set map[string]bool
}

// aliases maps shorthand flags to the canonical name recorded in Set.
var aliases = map[string]string{
	"s": "starts",
	"o": "output",
	"w": "width",
	"q": "quiet",
	"v": "version",
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: Collatz (3n+1) trajectories

Version: %s

Usage of %s:
  %s [flags] START|A..B ...

`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and positional start specs may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{Set: map[string]bool{}}
	var help bool

	// Input
	starts := &sliceValue{dst: &opt.StartFiles}
	fs.Var(starts, "starts", "file of start values, one per line (repeatable, globs, '-' or .gz)")
	fs.Var(starts, "s", "alias of --starts")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML file with default settings")

	// Computation
	fs.IntVar(&opt.Width, "width", 64, "integer width in bits: 32 | 64 [64]")
	fs.IntVar(&opt.Width, "w", 64, "alias of --width")
	fs.Uint64Var(&opt.MaxSteps, "max-steps", 0, "abort a trajectory after N steps (0 = unlimited) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", OutputText, "alias of --output")
	fs.BoolVar(&opt.Steps, "steps", false, "emit every snapshot, not only the terminal one [false]")
	fs.BoolVar(&opt.Peaks, "peaks", false, "emit only snapshots that raise the running maximum, plus the terminal one [false]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs by start, then step [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.StringVar(&opt.MetricsOut, "metrics-out", "", "write Prometheus metrics to this file when done")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log debug detail [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	posArgs = append(posArgs, fs.Args()...)
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if canon, ok := aliases[name]; ok {
			name = canon
		}
		opt.Set[name] = true
	})
	opt.Header = !noHeader
	if opt.Version {
		return opt, nil
	}
	opt.Specs = posArgs

	files, err := cliutil.ExpandPaths(opt.StartFiles)
	if err != nil {
		return opt, err
	}
	opt.StartFiles = files

	if opt.Quiet && opt.Verbose {
		return opt, errors.New("--quiet conflicts with --verbose")
	}
	if opt.Steps && opt.Peaks {
		return opt, errors.New("--steps conflicts with --peaks")
	}
	return opt, nil
}

// Validate checks settings that may also come from a config file, so it
// runs after defaults are merged.
func (o Options) Validate() error {
	if len(o.Specs) == 0 && len(o.StartFiles) == 0 {
		return errors.New("provide at least one start value or --starts file")
	}
	if o.Width != 32 && o.Width != 64 {
		return fmt.Errorf("invalid --width %d (want 32 or 64)", o.Width)
	}
	switch o.Output {
	case OutputText, OutputJSON, OutputJSONL:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}

// sliceValue appends each value to a *[]string (for --starts/-s).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}
