// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"collatz/internal/runner"
)

// FormatRowTSV returns the TSV columns for r (no trailing newline).
func FormatRowTSV(r runner.Record) string {
	var b strings.Builder
	b.Grow(48)
	b.WriteString(strconv.FormatUint(r.Start, 10))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatBool(r.Finished))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatUint(r.Highest, 10))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatUint(r.Value, 10))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatUint(r.N, 10))
	return b.String()
}
