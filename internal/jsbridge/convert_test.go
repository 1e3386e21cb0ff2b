package jsbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-wasm/pkg/sims/life"
)

func TestCellBytes(t *testing.T) {
	cells := []life.Cell{life.Dead, life.Alive, life.Alive}
	got := cellBytes(nil, cells)
	assert.Equal(t, []byte{0, 1, 1}, got)

	reused := cellBytes(make([]byte, 0, 8), cells[:2])
	assert.Equal(t, []byte{0, 1}, reused)
	assert.Equal(t, 8, cap(reused))
}

func TestSeedStrategy(t *testing.T) {
	s, err := seedStrategy("", 0)
	require.NoError(t, err)
	assert.True(t, s.Alive(14))
	assert.False(t, s.Alive(15))

	s, err = seedStrategy("random", 3)
	require.NoError(t, err)
	assert.IsType(t, &life.Random{}, s)

	s, err = seedStrategy("empty", 0)
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = seedStrategy("bogus", 0)
	assert.Error(t, err)
}

func TestDimension(t *testing.T) {
	v, err := dimension("width", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	_, err = dimension("height", 0)
	assert.ErrorContains(t, err, "height must be positive")
}
