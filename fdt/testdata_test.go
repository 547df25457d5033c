package fdt_test

import (
	"github.com/deploymenttheory/go-fdt/fdt/fdttest"
)

// buildSampleBlob renders a small but representative device tree
// covering every scenario named in spec section 8: a chosen node with
// bootargs, a cpus/cpu-map phandle chain, and a soc with two
// ns16550a-compatible serial nodes.
func buildSampleBlob() []byte {
	b := fdttest.New()
	b.BeginNode("")
	b.PropU32("#address-cells", 2)
	b.PropU32("#size-cells", 1)
	b.PropString("model", "test,board")

	b.BeginNode("cpus")
	b.PropU32("#address-cells", 1)
	b.PropU32("#size-cells", 0)

	b.BeginNode("cpu@0")
	b.PropStringList("compatible", "arm,cortex-a53")
	b.PropU32("reg", 0)
	b.PropU32("phandle", 1)
	b.EndNode()

	b.BeginNode("cpu@1")
	b.PropStringList("compatible", "arm,cortex-a53")
	b.PropU32("reg", 1)
	b.PropU32("phandle", 2)
	b.EndNode()

	b.BeginNode("cpu-map")
	b.BeginNode("cluster0")
	b.BeginNode("core0")
	b.PropU32("cpu", 1)
	b.EndNode()
	b.BeginNode("core1")
	b.PropU32("cpu", 2)
	b.EndNode()
	b.EndNode() // cluster0
	b.EndNode() // cpu-map

	b.EndNode() // cpus

	b.BeginNode("chosen")
	b.PropString("bootargs", "console=ttyS0")
	b.EndNode()

	b.BeginNode("soc")
	b.BeginNode("serial@10000000")
	b.PropStringList("compatible", "ns16550a")
	b.EndNode()
	b.BeginNode("serial@10000100")
	b.PropStringList("compatible", "ns16550a")
	b.EndNode()
	b.EndNode() // soc

	b.EndNode() // root

	return b.Build()
}

// buildBlobWithEmptyStringListEntries covers the "consecutive NULs
// count as empty strings" rule from spec section 4.8.
func buildBlobWithEmptyStringListEntries() []byte {
	b := fdttest.New()
	b.BeginNode("")
	b.BeginNode("x")
	b.PropBytes("list", []byte("a\x00\x00b\x00"))
	b.EndNode()
	b.EndNode()
	return b.Build()
}

// buildBlobWithU64Prop covers the big-endian round trip invariant from
// spec section 8 for a two-cell (64-bit) value.
func buildBlobWithU64Prop(v uint64) []byte {
	b := fdttest.New()
	b.BeginNode("")
	b.BeginNode("x")
	b.PropU32Array("bignum", uint32(v>>32), uint32(v))
	b.EndNode()
	b.EndNode()
	return b.Build()
}
