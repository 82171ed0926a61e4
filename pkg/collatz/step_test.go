package collatz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	cases := []struct{ in, want uint64 }{
		{1, 4},
		{2, 1},
		{9, 28},
		{28, 14},
		{52, 26},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Step(c.in), "Step(%d)", c.in)
	}
}

func TestCheckedStep_Overflow(t *testing.T) {
	// 85*3+1 = 256 does not fit in a byte; 84 is even and 83*3+1 = 250 does.
	v, err := CheckedStep[uint8](83)
	require.NoError(t, err)
	assert.Equal(t, uint8(250), v)

	_, err = CheckedStep[uint8](85)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflow))

	var oe *OverflowError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, uint64(85), oe.Value)
	assert.Equal(t, 8, oe.Bits)
	assert.Equal(t, "collatz: 3*85+1 overflows uint8", oe.Error())

	// Halving never overflows, even at the top of the range.
	v, err = CheckedStep[uint8](254)
	require.NoError(t, err)
	assert.Equal(t, uint8(127), v)
}

func TestCheckedStep_Boundary64(t *testing.T) {
	limit := (Max[uint64]() - 1) / 3
	if limit%2 == 0 {
		limit--
	}
	v, err := CheckedStep(limit)
	require.NoError(t, err)
	assert.Equal(t, 3*limit+1, v)

	_, err = CheckedStep(limit + 2)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestFits(t *testing.T) {
	assert.True(t, Fits[uint32](1<<32-1))
	assert.False(t, Fits[uint32](1<<32))
	assert.True(t, Fits[uint64](1<<63))
	assert.Equal(t, uint16(0xffff), Max[uint16]())
}
