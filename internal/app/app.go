// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"collatz/internal/appcore"
	"collatz/internal/cli"
	"collatz/internal/cmdutil"
	"collatz/internal/config"
	"collatz/internal/metrics"
	"collatz/internal/runner"
	"collatz/internal/startset"
	"collatz/internal/version"
	"collatz/internal/visitors"
	"collatz/internal/writers"
	"collatz/pkg/collatz"
)

// flushTo flushes outw and maps the result to an exit code.
func flushTo(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitRuntime
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("collatz")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flushTo(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flushTo(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "collatz version %s\n", version.Version)
		return flushTo(outw, stderr, appcore.ExitOK)
	}

	if opts.ConfigFile != "" {
		f, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return appcore.ExitUsage
		}
		f.Apply(&opts)
	}
	if err := opts.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	starts, err := loadStarts(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	starts, dropped := startset.Dedupe(starts)
	if dropped > 0 {
		cmdutil.Warnf(log, "dropped %d duplicate start value(s)", dropped)
	}
	if opts.Width == 32 {
		for _, s := range starts {
			if !collatz.Fits[uint32](s) {
				_, _ = fmt.Fprintf(stderr, "start %d does not fit --width 32\n", s)
				return appcore.ExitUsage
			}
		}
	}

	var rec *metrics.Recorder
	coreOpts := appcore.Options{
		Starts:   starts,
		Width:    opts.Width,
		AllSteps: opts.Steps || opts.Peaks,
		MaxSteps: opts.MaxSteps,
		Logger:   log,
	}
	if opts.MetricsOut != "" {
		rec = metrics.New()
		coreOpts.Observer = rec
	}

	visit := visitors.PassThrough{}.Visit
	if opts.Peaks {
		visit = visitors.Peaks{}.Visit
	}
	writer := appcore.NewRecordWriterFactory(opts.Output, opts.Sort, opts.Header)
	code := appcore.Run[runner.Record](parent, stdout, stderr, coreOpts, visit, writer)

	if rec != nil {
		if err := rec.WriteFile(opts.MetricsOut); err != nil {
			log.Error("writing metrics", "path", opts.MetricsOut, "err", err)
			if code == appcore.ExitOK {
				code = appcore.ExitRuntime
			}
		}
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadStarts expands positional specs first, then --starts files, in order.
func loadStarts(o cli.Options) ([]uint64, error) {
	var out []uint64
	for _, spec := range o.Specs {
		vs, err := startset.ParseSpec(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	for _, fn := range o.StartFiles {
		vs, err := startset.Load(fn)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return out, nil
}
