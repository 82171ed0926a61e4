package collatz

import "iter"

// Generator produces the snapshots of one trajectory on demand. It is not
// safe for concurrent use; give every consumer its own Generator.
//
// The zero Generator is exhausted.
type Generator[T Unsigned] struct {
	status Status[T]
	done   bool
	err    error
}

// New returns a Generator positioned before the first snapshot of start's
// trajectory.
func New[T Unsigned](start T) (*Generator[T], error) {
	if start == 0 {
		return nil, ErrZeroStart
	}
	return &Generator[T]{status: newStatus(start)}, nil
}

// Next pulls the next snapshot. ok is false once the trajectory is
// exhausted, and stays false on every later call.
//
// Reaching 1 takes two pulls: the step that lands on 1 is reported with
// Finished unset, and the following pull reports the same state again with
// Finished set. A start of 1 therefore yields exactly one snapshot.
func (g *Generator[T]) Next() (s Status[T], ok bool) {
	if g.done {
		return s, false
	}
	if g.status.Value == 1 && !g.status.Finished {
		g.status.Finished = true
		return g.status, true
	}
	if g.status.Value < 1 || g.status.Finished {
		g.done = true
		return s, false
	}
	next, err := g.status.Next()
	if err != nil {
		g.err = err
		g.done = true
		return s, false
	}
	g.status = next
	return g.status, true
}

// Err returns the error that ended the trajectory early, if any.
func (g *Generator[T]) Err() error { return g.err }

// Done reports whether Next has signalled exhaustion.
func (g *Generator[T]) Done() bool { return g.done }

// Current returns the most recently produced state without advancing.
func (g *Generator[T]) Current() Status[T] { return g.status }

// All adapts the generator to a range-over-func sequence. Breaking out of
// the loop leaves the generator where it stopped; ranging again resumes.
func (g *Generator[T]) All() iter.Seq[Status[T]] {
	return func(yield func(Status[T]) bool) {
		for {
			s, ok := g.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}
