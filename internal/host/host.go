// Package host provides ready-made fdt.HostOps configurations, adapted
// from the teacher's device/config pattern (internal/device,
// pkg/dmg.DMGConfig): a small struct of tunables producing a fully wired
// collaborator, rather than requiring every caller to hand-write
// malloc/free closures.
package host

import "github.com/deploymenttheory/go-fdt/fdt"

// Dynamic returns HostOps backed by ordinary Go heap allocation: Malloc
// is make([]byte, n) and Free is a no-op (left to the garbage
// collector), the common case for callers that don't need to simulate
// a host allocator.
func Dynamic() fdt.HostOps {
	return fdt.HostOps{
		Malloc: func(size int) []byte { return make([]byte, size) },
		Free:   func([]byte) {},
	}
}

// DynamicWith returns HostOps backed by caller-supplied malloc/free
// callbacks, for tests that want to simulate allocator exhaustion or
// track allocation counts.
func DynamicWith(malloc func(int) []byte, free func([]byte)) fdt.HostOps {
	return fdt.HostOps{Malloc: malloc, Free: free}
}

// Static returns HostOps for use with Parser.InitStatic against buf.
// Malloc and Free are left nil since InitStatic never calls them (spec
// section 4.2/6: "both malloc and free are unused").
func Static() fdt.HostOps {
	return fdt.HostOps{}
}
