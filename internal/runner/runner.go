// internal/runner/runner.go
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"collatz/pkg/collatz"
)

// ErrStepLimit is returned when a trajectory exceeds Config.MaxSteps.
var ErrStepLimit = errors.New("step limit exceeded")

// ctxCheckEvery is how many pulls pass between cancellation checks.
const ctxCheckEvery = 1 << 12

// Record is one emitted snapshot together with the width it was computed in.
type Record struct {
	collatz.Status[uint64]
	Width int
}

// Observer is told how every trajectory ended.
type Observer interface {
	TrajectoryDone(final collatz.Status[uint64])
	TrajectoryFailed(start uint64, err error)
}

// Config controls a run.
type Config struct {
	Width    int    // 32 or 64
	AllSteps bool   // visit every snapshot instead of only the terminal one
	MaxSteps uint64 // 0 = unlimited

	NewTrajectory Factory  // overrides the width-derived factory (tests)
	Observer      Observer // optional
	Logger        *slog.Logger
}

// ForEachRecord runs each start to completion, in order, and calls visit
// with its snapshots. A start that fails (overflow, step limit) is logged
// and skipped; the first such error is returned after all starts ran.
// Errors from visit and context cancellation stop the run immediately.
func ForEachRecord(ctx context.Context, cfg Config, starts []uint64, visit func(Record) error) error {
	factory := cfg.NewTrajectory
	if factory == nil {
		var err error
		if factory, err = FactoryFor(cfg.Width); err != nil {
			return err
		}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var firstErr error
	for _, start := range starts {
		if err := ctx.Err(); err != nil {
			return err
		}
		final, err := runOne(ctx, cfg, factory, start, visit)
		var stop *visitError
		switch {
		case errors.As(err, &stop):
			return stop.err
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case err != nil:
			err = fmt.Errorf("start %d: %w", start, err)
			log.Warn("trajectory failed", "start", start, "err", err)
			if cfg.Observer != nil {
				cfg.Observer.TrajectoryFailed(start, err)
			}
			if firstErr == nil {
				firstErr = err
			}
		default:
			log.Debug("trajectory done", "start", start, "steps", final.N, "highest", final.Highest)
			if cfg.Observer != nil {
				cfg.Observer.TrajectoryDone(final)
			}
		}
	}
	return firstErr
}

// visitError marks an error returned by the caller's visit func.
type visitError struct{ err error }

func (e *visitError) Error() string { return e.err.Error() }

func runOne(ctx context.Context, cfg Config, factory Factory, start uint64, visit func(Record) error) (collatz.Status[uint64], error) {
	tr, err := factory(start)
	if err != nil {
		return collatz.Status[uint64]{}, err
	}
	var (
		last  collatz.Status[uint64]
		got   bool
		pulls int
	)
	for {
		s, ok := tr.Next()
		if !ok {
			break
		}
		last, got = s, true
		if cfg.MaxSteps > 0 && s.N > cfg.MaxSteps {
			return last, fmt.Errorf("%w (%d)", ErrStepLimit, cfg.MaxSteps)
		}
		if cfg.AllSteps {
			if err := visit(Record{Status: s, Width: cfg.Width}); err != nil {
				return last, &visitError{err}
			}
		}
		if pulls++; pulls%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return last, err
			}
		}
	}
	if err := tr.Err(); err != nil {
		return last, err
	}
	if !got {
		return last, errors.New("trajectory produced no snapshots")
	}
	if !cfg.AllSteps {
		if err := visit(Record{Status: last, Width: cfg.Width}); err != nil {
			return last, &visitError{err}
		}
	}
	return last, nil
}
