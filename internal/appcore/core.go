// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"collatz/internal/cmdutil"
	"collatz/internal/runner"
	"collatz/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

type Options struct {
	Starts   []uint64
	Width    int
	AllSteps bool
	MaxSteps uint64

	Observer runner.Observer
	Logger   *slog.Logger
}

type VisitorFunc[T any] func(runner.Record) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run computes every trajectory in o.Starts, one after another, while a
// writer goroutine renders the kept records to stdout. It returns a
// process exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	log := o.Logger
	if log == nil {
		log = cmdutil.NewLogger(stderr, false, false)
	}
	outw := bufio.NewWriter(stdout)

	g, ctx := errgroup.WithContext(parent)
	inCh, writeErr := wf.Start(outw, 256)

	var (
		total int
		perr  error
	)
	g.Go(func() error {
		defer close(inCh)
		var err error
		total, err = cmdutil.RunStream[T](
			ctx,
			runner.Config{
				Width:    o.Width,
				AllSteps: o.AllSteps,
				MaxSteps: o.MaxSteps,
				Observer: o.Observer,
				Logger:   log,
			},
			o.Starts,
			visit,
			func(x T) error {
				select {
				case inCh <- x:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			},
		)
		// Per-trajectory failures are reported, not fatal to the writer.
		if err != nil && !errors.Is(err, context.Canceled) && ctx.Err() == nil {
			perr = err
			return nil
		}
		return err
	})
	g.Go(func() error {
		return <-writeErr
	})
	err := g.Wait()

	switch {
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled) && parent.Err() != nil:
		return ExitCancelled
	case err != nil:
		fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitRuntime
	}
	if perr != nil {
		fmt.Fprintln(stderr, perr)
		return ExitRuntime
	}
	log.Debug("run complete", "starts", len(o.Starts), "emitted", total)
	return ExitOK
}
