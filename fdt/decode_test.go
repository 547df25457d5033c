package fdt_test

import (
	"testing"

	"github.com/deploymenttheory/go-fdt/fdt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPropStringList(t *testing.T) {
	p := mustInit(t, buildSampleBlob())

	cpu := p.Find("cpus/cpu")
	require.NotNil(t, cpu)

	compat := p.FindProp(cpu, "compatible")
	require.NotNil(t, compat)

	s0, ok := fdt.ReadPropString(compat, 0)
	require.True(t, ok)
	assert.Equal(t, "arm,cortex-a53", s0)

	_, ok = fdt.ReadPropString(compat, 1)
	assert.False(t, ok)
}

func TestReadPropStringEmptyEntriesCount(t *testing.T) {
	b := buildBlobWithEmptyStringListEntries()
	p := mustInit(t, b)

	n := p.Find("x")
	require.NotNil(t, n)
	pr := p.FindProp(n, "list")
	require.NotNil(t, pr)

	s0, ok := fdt.ReadPropString(pr, 0)
	require.True(t, ok)
	assert.Equal(t, "a", s0)

	s1, ok := fdt.ReadPropString(pr, 1)
	require.True(t, ok)
	assert.Equal(t, "", s1)

	s2, ok := fdt.ReadPropString(pr, 2)
	require.True(t, ok)
	assert.Equal(t, "b", s2)

	_, ok = fdt.ReadPropString(pr, 3)
	assert.False(t, ok)
}

func TestReadPropCellArrayBounds(t *testing.T) {
	p := mustInit(t, buildSampleBlob())

	cpu := p.Find("cpus/cpu")
	require.NotNil(t, cpu)
	reg := p.FindProp(cpu, "reg")
	require.NotNil(t, reg)

	count := fdt.ReadPropCellArray(reg, 1, nil)
	assert.Equal(t, 1, count)

	out := make([]uint32, 1)
	n := fdt.ReadPropCellArray(reg, 1, out)
	assert.Equal(t, 1, n)
	assert.Contains(t, []uint32{0, 1}, out[0]) // reg is 0 for cpu@0, 1 for cpu@1
}

func TestReadPropCellArrayRejectsNilPropOrZeroWidth(t *testing.T) {
	assert.Equal(t, 0, fdt.ReadPropCellArray(nil, 1, nil))

	p := mustInit(t, buildSampleBlob())
	cpu := p.Find("cpus/cpu")
	reg := p.FindProp(cpu, "reg")
	assert.Equal(t, 0, fdt.ReadPropCellArray(reg, 0, nil))
}

func TestReadPropU64BigEndianRoundTrip(t *testing.T) {
	b := buildBlobWithU64Prop(0x1122334455667788)
	p := mustInit(t, b)

	n := p.Find("x")
	require.NotNil(t, n)
	pr := p.FindProp(n, "bignum")
	require.NotNil(t, pr)

	v, ok := fdt.ReadPropU64(pr)
	require.True(t, ok)
	assert.EqualValues(t, 0x1122334455667788, v)
}

func TestReadPropByteStringLengthMatchesCopy(t *testing.T) {
	p := mustInit(t, buildSampleBlob())
	chosen := p.Find("chosen")
	bootargs := p.FindProp(chosen, "bootargs")

	length := fdt.ReadPropByteString(bootargs, nil)
	out := make([]byte, length)
	copied := fdt.ReadPropByteString(bootargs, out)
	assert.Equal(t, length, copied)
}

func TestReadPropU32OnNilProp(t *testing.T) {
	_, ok := fdt.ReadPropU32(nil)
	assert.False(t, ok)
}
