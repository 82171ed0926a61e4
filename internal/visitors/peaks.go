package visitors

import "collatz/internal/runner"

// Peaks keeps snapshots that set a new running maximum, plus the terminal
// one. A trajectory never revisits a value before reaching 1, so a value
// equal to Highest after the first step is always a new record.
type Peaks struct{}

func (Peaks) Visit(r runner.Record) (keep bool, out runner.Record, err error) {
	if r.Finished {
		return true, r, nil
	}
	return r.N > 0 && r.Value == r.Highest, r, nil
}
