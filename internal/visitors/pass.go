package visitors

import "collatz/internal/runner"

// PassThrough returns the record unchanged.
type PassThrough struct{}

func (PassThrough) Visit(r runner.Record) (keep bool, out runner.Record, err error) {
	return true, r, nil
}
