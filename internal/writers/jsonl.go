// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"collatz/internal/output"
	"collatz/internal/runner"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

func withPooledWriter(out io.Writer, fn func(*json.Encoder) error) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()
	if err := fn(json.NewEncoder(bw)); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}

// streamJSONL encodes each record as one v1 JSON line as it arrives.
func streamJSONL(out io.Writer, in <-chan runner.Record) error {
	return withPooledWriter(out, func(enc *json.Encoder) error {
		for r := range in {
			if err := enc.Encode(output.ToAPIStatus(r)); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeJSONL(out io.Writer, list []runner.Record) error {
	return withPooledWriter(out, func(enc *json.Encoder) error {
		for _, r := range list {
			if err := enc.Encode(output.ToAPIStatus(r)); err != nil {
				return err
			}
		}
		return nil
	})
}
