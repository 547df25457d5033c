package fdt_test

import (
	"testing"

	"github.com/deploymenttheory/go-fdt/fdt"
	"github.com/deploymenttheory/go-fdt/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitStaticSucceedsWithSufficientBuffer(t *testing.T) {
	blob := buildSampleBlob()
	p := fdt.NewParser()

	buf := make([]byte, 1<<16)
	require.NoError(t, p.InitStatic(blob, buf, host.Static()))

	assert.NotNil(t, p.Find("soc"))
}

func TestInitStaticFailsWithUndersizedBuffer(t *testing.T) {
	blob := buildSampleBlob()
	p := fdt.NewParser()

	var calls int
	ops := host.Static()
	ops.OnError = func(string) { calls++ }

	buf := make([]byte, 4)
	err := p.InitStatic(blob, buf, ops)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Nil(t, p.Find("/"))
}
