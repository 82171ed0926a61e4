package visitors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collatz/internal/runner"
	"collatz/pkg/collatz"
)

func TestPeaks(t *testing.T) {
	all, err := collatz.Trajectory[uint64](9)
	require.NoError(t, err)

	var kept []uint64
	for _, s := range all {
		keep, out, err := Peaks{}.Visit(runner.Record{Status: s, Width: 64})
		require.NoError(t, err)
		if keep {
			kept = append(kept, out.Value)
		}
	}
	// 9 -> 28 -> 14 -> 7 -> 22 -> 11 -> 34 -> 17 -> 52 -> ... -> 1
	assert.Equal(t, []uint64{28, 34, 52, 1}, kept)
}

func TestPassThrough(t *testing.T) {
	r := runner.Record{Status: collatz.Status[uint64]{Start: 3, Value: 10, Highest: 10, N: 1}}
	keep, out, err := PassThrough{}.Visit(r)
	assert.True(t, keep)
	assert.Equal(t, r, out)
	assert.NoError(t, err)
}
