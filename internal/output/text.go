// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"collatz/internal/runner"
)

// WriteText prints an optional header and one TSV row per record.
func WriteText(w io.Writer, list []runner.Record, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText over a channel. The header is written before the
// first record arrives.
func StreamText(w io.Writer, in <-chan runner.Record, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
