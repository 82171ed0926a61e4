package appcore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"collatz/internal/output"
	"collatz/internal/runner"
	"collatz/internal/visitors"
)

func TestRun_TextFinalOnly(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run[runner.Record](context.Background(), &out, &errBuf,
		Options{Starts: []uint64{1, 9}, Width: 64},
		visitors.PassThrough{}.Visit,
		NewRecordWriterFactory(output.FormatText, false, true),
	)
	assert.Equal(t, ExitOK, code, errBuf.String())
	assert.Equal(t, output.TSVHeader+"\n1\ttrue\t1\t1\t0\n9\ttrue\t52\t1\t19\n", out.String())
}

func TestRun_TrajectoryFailureIsExit3(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run[runner.Record](context.Background(), &out, &errBuf,
		Options{Starts: []uint64{27, 3}, Width: 64, MaxSteps: 20},
		visitors.PassThrough{}.Visit,
		NewRecordWriterFactory(output.FormatText, false, false),
	)
	assert.Equal(t, ExitRuntime, code)
	assert.Contains(t, errBuf.String(), "start 27")
	assert.Equal(t, "3\ttrue\t16\t1\t7\n", out.String(), "other starts still written")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	code := Run[runner.Record](ctx, io.Discard, io.Discard,
		Options{Starts: []uint64{27}, Width: 64, AllSteps: true},
		visitors.PassThrough{}.Visit,
		NewRecordWriterFactory(output.FormatJSONL, false, false),
	)
	assert.Equal(t, ExitCancelled, code)
}

type errWriter struct{ err error }

func (e errWriter) Write([]byte) (int, error) { return 0, e.err }

func TestRun_OutputError(t *testing.T) {
	var errBuf bytes.Buffer
	starts := make([]uint64, 0, 5000)
	for i := uint64(1); i <= 5000; i++ {
		starts = append(starts, i)
	}
	code := Run[runner.Record](context.Background(), errWriter{errors.New("disk full")}, &errBuf,
		Options{Starts: starts, Width: 64, AllSteps: true},
		visitors.PassThrough{}.Visit,
		NewRecordWriterFactory(output.FormatText, false, true),
	)
	assert.Equal(t, ExitRuntime, code)
	assert.True(t, strings.Contains(errBuf.String(), "disk full"))
}

type pipeWriter struct{}

func (pipeWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRun_BrokenPipeIsSuccess(t *testing.T) {
	code := Run[runner.Record](context.Background(), pipeWriter{}, io.Discard,
		Options{Starts: []uint64{27, 97, 871}, Width: 64, AllSteps: true},
		visitors.PassThrough{}.Visit,
		NewRecordWriterFactory(output.FormatText, false, true),
	)
	assert.Equal(t, ExitOK, code)
}
