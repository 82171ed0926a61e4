package appcore

import (
	"io"

	"collatz/internal/runner"
	"collatz/internal/writers"
)

type RecordWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewRecordWriterFactory(format string, sort, header bool) RecordWriterFactory {
	return RecordWriterFactory{Format: format, Sort: sort, Header: header}
}

func (w RecordWriterFactory) Start(out io.Writer, bufSize int) (chan<- runner.Record, <-chan error) {
	return writers.StartRecordWriter(out, w.Format, w.Sort, w.Header, bufSize)
}
