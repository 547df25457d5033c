package fdt

import (
	"testing"

	fdterrors "github.com/deploymenttheory/go-fdt/fdt/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaStaticBufferTooSmall(t *testing.T) {
	_, err := newArena(10, 10, HostOps{}, make([]byte, 4))
	require.Error(t, err)
	var fe *fdterrors.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fdterrors.KindCapacity, fe.Kind)
}

func TestArenaDynamicRequiresMalloc(t *testing.T) {
	_, err := newArena(1, 1, HostOps{}, nil)
	require.Error(t, err)
	var fe *fdterrors.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fdterrors.KindConfiguration, fe.Kind)
}

func TestArenaNodeTableExhaustion(t *testing.T) {
	a, err := newArena(1, 0, HostOps{Malloc: func(n int) []byte { return make([]byte, n) }}, nil)
	require.NoError(t, err)

	_, _, err = a.allocNode()
	require.NoError(t, err)

	_, _, err = a.allocNode()
	require.Error(t, err)
	var fe *fdterrors.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fdterrors.KindCapacity, fe.Kind)
}

func TestPhandleOutOfRangeDropsSilently(t *testing.T) {
	a, err := newArena(2, 0, HostOps{Malloc: func(n int) []byte { return make([]byte, n) }}, nil)
	require.NoError(t, err)

	idx, _, err := a.allocNode()
	require.NoError(t, err)

	a.setPhandle(5, idx) // out of range for a 2-node table; must drop silently
	assert.Equal(t, nilIndex, a.phandle(5))
	assert.Equal(t, nilIndex, a.phandle(0)) // never registered
}
