package collatz

// Collect drains g and returns every snapshot in order.
func Collect[T Unsigned](g *Generator[T]) ([]Status[T], error) {
	var out []Status[T]
	for s := range g.All() {
		out = append(out, s)
	}
	return out, g.Err()
}

// Last drains g and returns only the final snapshot. ok is false when g
// produced nothing.
func Last[T Unsigned](g *Generator[T]) (last Status[T], ok bool, err error) {
	for s := range g.All() {
		last, ok = s, true
	}
	return last, ok, g.Err()
}

// Trajectory returns every snapshot of start's trajectory.
func Trajectory[T Unsigned](start T) ([]Status[T], error) {
	g, err := New(start)
	if err != nil {
		return nil, err
	}
	return Collect(g)
}

// Final returns the terminal snapshot of start's trajectory.
func Final[T Unsigned](start T) (Status[T], error) {
	g, err := New(start)
	if err != nil {
		return Status[T]{}, err
	}
	last, _, err := Last(g)
	return last, err
}
