// internal/common/sort.go
package common

import (
	"sort"

	"collatz/internal/runner"
)

// LessRecord defines a stable order for records (for --sort): by start,
// then step, with the terminal snapshot after the step that reached 1.
func LessRecord(a, b runner.Record) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.N != b.N {
		return a.N < b.N
	}
	return !a.Finished && b.Finished
}

func SortRecords(rs []runner.Record) {
	sort.SliceStable(rs, func(i, j int) bool { return LessRecord(rs[i], rs[j]) })
}
