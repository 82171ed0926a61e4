// internal/startset/loader.go
package startset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Load reads start specs from path, one per line. Blank lines and lines
// starting with '#' are skipped; anything after whitespace on a line is a
// trailing comment. Gzip input and "-" (stdin) are accepted.
func Load(path string) ([]uint64, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return read(path, rc)
}

func read(name string, r io.Reader) ([]uint64, error) {
	var list []uint64
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		vs, err := ParseSpec(f[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d %w", name, ln, err)
		}
		list = append(list, vs...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return list, nil
}

// Dedupe drops repeated values, keeping first-seen order. It returns the
// number of values dropped.
func Dedupe(in []uint64) ([]uint64, int) {
	seen := make(map[uint64]struct{}, len(in))
	out := in[:0:0]
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, len(in) - len(out)
}
