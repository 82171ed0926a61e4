// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"collatz/internal/runner"
	"collatz/pkg/api"
)

// ToAPIStatus converts a record to the stable wire schema (v1).
func ToAPIStatus(r runner.Record) api.StatusV1 {
	return api.StatusV1{
		Start:    r.Start,
		Finished: r.Finished,
		Highest:  r.Highest,
		Value:    r.Value,
		N:        r.N,
		Width:    r.Width,
	}
}

// WriteJSON writes a single JSON array of v1 statuses (pretty-indented).
func WriteJSON(w io.Writer, list []runner.Record) error {
	out := make([]api.StatusV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIStatus(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
