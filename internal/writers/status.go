// internal/writers/status.go
package writers

import (
	"io"

	"collatz/internal/common"
	"collatz/internal/output"
	"collatz/internal/runner"
)

func drain(ch <-chan runner.Record) []runner.Record {
	list := make([]runner.Record, 0, 128)
	for r := range ch {
		list = append(list, r)
	}
	return list
}

func init() {
	// JSON array
	Register(output.FormatJSON, func(w io.Writer, args Args) error {
		list := drain(args.In)
		if args.Sort {
			common.SortRecords(list)
		}
		return output.WriteJSON(w, list)
	})

	// JSONL streaming (sorting forces buffering)
	Register(output.FormatJSONL, func(w io.Writer, args Args) error {
		if args.Sort {
			list := drain(args.In)
			common.SortRecords(list)
			return writeJSONL(w, list)
		}
		return streamJSONL(w, args.In)
	})

	// TEXT/TSV
	Register(output.FormatText, func(w io.Writer, args Args) error {
		if args.Sort {
			list := drain(args.In)
			common.SortRecords(list)
			return output.WriteText(w, list, args.Header)
		}
		return output.StreamText(w, args.In, args.Header)
	})
}

// StartRecordWriter spins up a writer goroutine for format. Send records on
// the returned channel, close it, then read the single result from the
// error channel.
func StartRecordWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- runner.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan runner.Record, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Write(format, out, Args{Sort: sort, Header: header, In: in})
	}()
	return in, errCh
}
