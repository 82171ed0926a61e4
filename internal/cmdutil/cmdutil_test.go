package cmdutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collatz/internal/runner"
)

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, true, false)
	Warnf(log, "dropped %d duplicates", 2)
	assert.Empty(t, buf.String(), "quiet suppresses warnings")

	log = NewLogger(&buf, false, false)
	Warnf(log, "dropped %d duplicates", 2)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "dropped 2 duplicates")

	buf.Reset()
	NewLogger(&buf, false, true).Debug("detail")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestRunStream_FiltersAndCounts(t *testing.T) {
	var got []uint64
	n, err := RunStream(context.Background(), runner.Config{Width: 64, AllSteps: true}, []uint64{3},
		func(r runner.Record) (bool, uint64, error) { return r.Value%2 == 0, r.Value, nil },
		func(v uint64) error { got = append(got, v); return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, []uint64{10, 16, 8, 4, 2}, got)
	assert.Equal(t, 5, n)
}
