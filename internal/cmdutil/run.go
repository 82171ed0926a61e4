package cmdutil

import (
	"context"

	"collatz/internal/runner"
)

// RunStream runs the trajectory runner, applies a visitor, and streams results via send.
// It returns the number of kept outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg runner.Config,
	starts []uint64,
	visit func(runner.Record) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := runner.ForEachRecord(ctx, cfg, starts, func(r runner.Record) error {
		keep, out, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
