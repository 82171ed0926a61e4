package collatz

import "fmt"

// Status is one snapshot of a trajectory. Snapshots are plain values; the
// ones returned by a Generator never alias its internal state.
type Status[T Unsigned] struct {
	Finished bool // terminal snapshot (Value == 1) has been emitted
	Start    T    // original input
	Highest  T    // running maximum over Start and every later value
	Value    T    // current value
	N        T    // steps applied so far
}

func newStatus[T Unsigned](start T) Status[T] {
	return Status[T]{Start: start, Highest: start, Value: start}
}

// Next returns the snapshot one step further along. The receiver is left
// untouched.
func (s Status[T]) Next() (Status[T], error) {
	v, err := CheckedStep(s.Value)
	if err != nil {
		return s, err
	}
	if v > s.Highest {
		s.Highest = v
	}
	s.Value = v
	s.N++
	return s, nil
}

func (s Status[T]) String() string {
	return fmt.Sprintf("{finished:%t start:%d highest:%d value:%d n:%d}",
		s.Finished, uint64(s.Start), uint64(s.Highest), uint64(s.Value), uint64(s.N))
}
