package host_test

import (
	"testing"

	"github.com/deploymenttheory/go-fdt/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicAllocatesRequestedSize(t *testing.T) {
	ops := host.Dynamic()
	require.NotNil(t, ops.Malloc)
	buf := ops.Malloc(16)
	assert.Len(t, buf, 16)
	assert.NotPanics(t, func() { ops.Free(buf) })
}

func TestDynamicWithTracksAllocations(t *testing.T) {
	var allocated, freed int
	ops := host.DynamicWith(
		func(n int) []byte { allocated += n; return make([]byte, n) },
		func(b []byte) { freed += len(b) },
	)
	buf := ops.Malloc(32)
	ops.Free(buf)
	assert.Equal(t, 32, allocated)
	assert.Equal(t, 32, freed)
}

func TestStaticLeavesMallocAndFreeNil(t *testing.T) {
	ops := host.Static()
	assert.Nil(t, ops.Malloc)
	assert.Nil(t, ops.Free)
}
