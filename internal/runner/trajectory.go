// internal/runner/trajectory.go
package runner

import (
	"errors"
	"fmt"

	"collatz/pkg/collatz"
)

// ErrWidth is returned when a start does not fit the configured width.
var ErrWidth = errors.New("start does not fit integer width")

// Trajectory is the minimal capability the runner needs from a generator.
// Any generator (including fakes in tests) can satisfy this.
type Trajectory interface {
	Next() (collatz.Status[uint64], bool)
	Err() error
}

// Factory builds the Trajectory for one start value.
type Factory func(start uint64) (Trajectory, error)

// widened reports a narrower generator's snapshots as uint64.
type widened[T collatz.Unsigned] struct {
	g *collatz.Generator[T]
}

func (w widened[T]) Next() (collatz.Status[uint64], bool) {
	s, ok := w.g.Next()
	if !ok {
		return collatz.Status[uint64]{}, false
	}
	return collatz.Status[uint64]{
		Finished: s.Finished,
		Start:    uint64(s.Start),
		Highest:  uint64(s.Highest),
		Value:    uint64(s.Value),
		N:        uint64(s.N),
	}, true
}

func (w widened[T]) Err() error { return w.g.Err() }

func factoryOf[T collatz.Unsigned]() Factory {
	return func(start uint64) (Trajectory, error) {
		if !collatz.Fits[T](start) {
			return nil, fmt.Errorf("%w (max %d)", ErrWidth, uint64(collatz.Max[T]()))
		}
		g, err := collatz.New(T(start))
		if err != nil {
			return nil, err
		}
		return widened[T]{g}, nil
	}
}

// FactoryFor returns the generator factory for a width in bits.
func FactoryFor(width int) (Factory, error) {
	switch width {
	case 32:
		return factoryOf[uint32](), nil
	case 64:
		return collatz64, nil
	default:
		return nil, fmt.Errorf("unsupported width %d", width)
	}
}

// collatz64 skips the widening copy.
func collatz64(start uint64) (Trajectory, error) {
	g, err := collatz.New(start)
	if err != nil {
		return nil, err
	}
	return g, nil
}
