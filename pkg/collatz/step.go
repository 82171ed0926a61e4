package collatz

// Unsigned is the set of integer types a trajectory can be computed in.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Step maps v to v/2 when v is even and to 3v+1 otherwise.
// It does not guard the top of T's range; see CheckedStep.
func Step[T Unsigned](v T) T {
	if v%2 == 0 {
		return v / 2
	}
	return 3*v + 1
}

// CheckedStep is Step with overflow detection. It returns an *OverflowError
// when 3v+1 does not fit in T.
func CheckedStep[T Unsigned](v T) (T, error) {
	if v%2 == 0 {
		return v / 2, nil
	}
	if v > (Max[T]()-1)/3 {
		return v, &OverflowError{Value: uint64(v), Bits: bitsOf[T]()}
	}
	return 3*v + 1, nil
}

// Max returns the largest value representable in T.
func Max[T Unsigned]() T {
	return ^T(0)
}

// Fits reports whether v is representable in T.
func Fits[T Unsigned](v uint64) bool {
	return uint64(T(v)) == v
}

func bitsOf[T Unsigned]() int {
	n := 0
	for m := Max[T](); m != 0; m >>= 1 {
		n++
	}
	return n
}
