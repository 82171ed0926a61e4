package collatz

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroStart is returned by New for a start of 0, whose trajectory
	// never reaches 1.
	ErrZeroStart = errors.New("collatz: start must be >= 1")

	// ErrOverflow matches any *OverflowError.
	ErrOverflow = errors.New("collatz: step overflows integer width")
)

// OverflowError reports an odd value whose successor 3v+1 does not fit
// in the generator's integer width.
type OverflowError struct {
	Value uint64
	Bits  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("collatz: 3*%d+1 overflows uint%d", e.Value, e.Bits)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }
