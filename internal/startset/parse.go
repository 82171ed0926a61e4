// internal/startset/parse.go
package startset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxRange caps how many values a single "a..b" spec may expand to.
const MaxRange = 1 << 24

var ErrZero = errors.New("start must be >= 1")

// ParseSpec expands one start spec: a decimal literal ("27", "1_000")
// or an inclusive range ("1..100").
func ParseSpec(spec string) ([]uint64, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, errors.New("empty start spec")
	}
	lo, hi, isRange := strings.Cut(spec, "..")
	if !isRange {
		v, err := parseOne(spec)
		if err != nil {
			return nil, err
		}
		return []uint64{v}, nil
	}
	a, err := parseOne(lo)
	if err != nil {
		return nil, err
	}
	b, err := parseOne(hi)
	if err != nil {
		return nil, err
	}
	if b < a {
		return nil, fmt.Errorf("bad range %q: end before start", spec)
	}
	if b-a >= MaxRange {
		return nil, fmt.Errorf("bad range %q: more than %d values", spec, MaxRange)
	}
	out := make([]uint64, 0, b-a+1)
	for v := a; ; v++ {
		out = append(out, v)
		if v == b {
			break
		}
	}
	return out, nil
}

func parseOne(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	digits := s
	if strings.Contains(s, "_") {
		if strings.HasPrefix(s, "_") || strings.HasSuffix(s, "_") || strings.Contains(s, "__") {
			return 0, fmt.Errorf("bad start %q: misplaced digit separator", s)
		}
		digits = strings.ReplaceAll(s, "_", "")
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad start %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("bad start %q: %w", s, ErrZero)
	}
	return v, nil
}
