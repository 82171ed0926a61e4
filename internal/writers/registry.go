// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"collatz/internal/runner"
)

// Args is what a registered writer receives: the record stream and the
// presentation switches.
type Args struct {
	Sort   bool
	Header bool
	In     <-chan runner.Record
}

// WriterFunc renders a record stream to w.
type WriterFunc func(w io.Writer, args Args) error

// Writer registry (format → handler). Register in init() blocks.
var registry = map[string]WriterFunc{}

// Register adds or replaces the writer for format (last wins).
func Register(format string, fn WriterFunc) { registry[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, args Args) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, args)
}
