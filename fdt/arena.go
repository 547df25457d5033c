package fdt

import (
	fdterrors "github.com/deploymenttheory/go-fdt/fdt/errors"
)

// arena is the single region the parser allocates at Init and never
// touches again once parsing completes, per spec section 4.2. The
// Design Notes (spec section 9) call for representing the tree with
// indices into fixed-capacity arrays rather than raw pointers; capacity
// is fixed at the exact counts the pre-scan produced, so element
// addresses never move once taken and no allocator call happens during
// the structure-block walk.
type arena struct {
	nodes []Node
	props []Property

	phandles []uint32 // indexed directly by handle value, spec section 4.6

	hostBuf []byte // the host-allocated budget bracket, see doc note below
	free    func([]byte)
	static  bool // true when hostBuf is caller-owned (InitStatic); never freed
}

// newArena partitions the caller's HostOps budget into the three
// sub-regions (node table, property table, phandle index table) spec
// section 4.2 describes. The Go rendering keeps the "single acquire,
// zero per-node/per-property allocator calls" contract: ops.Malloc is
// called exactly once to confirm the capacity budget (and, in static
// mode, the caller's fixed buffer is checked against it), while the
// actual node/property storage uses ordinary fixed-capacity Go slices
// instead of unsafe-cast sub-slices of the raw buffer.
func newArena(nodeCount, propCount int, ops HostOps, staticBuf []byte) (*arena, error) {
	const nodeSize = 40  // approximate Node footprint, for budget accounting
	const propSize = 32  // approximate Property footprint
	const refSize = 4    // NodeRef / phandle slot

	totalSize := nodeCount*nodeSize + propCount*propSize + nodeCount*refSize

	var buf []byte
	var free func([]byte)

	static := staticBuf != nil
	if static {
		if len(staticBuf) < totalSize {
			return nil, fdterrors.New(fdterrors.KindCapacity, "static buffer too small")
		}
		buf = staticBuf
	} else {
		if ops.Malloc == nil {
			return nil, fdterrors.New(fdterrors.KindConfiguration, "malloc is required in dynamic mode")
		}
		buf = ops.Malloc(totalSize)
		if buf == nil || len(buf) < totalSize {
			return nil, fdterrors.New(fdterrors.KindCapacity, "allocator returned insufficient memory")
		}
		free = ops.Free
	}

	phandles := make([]uint32, nodeCount)
	for i := range phandles {
		phandles[i] = nilIndex
	}

	return &arena{
		nodes:    make([]Node, 0, nodeCount),
		props:    make([]Property, 0, propCount),
		phandles: phandles,
		hostBuf:  buf,
		free:     free,
		static:   static,
	}, nil
}

// teardown releases the host buffer, the second half of the single
// acquire/release bracket spec section 4.2 requires. A static buffer is
// caller-owned and is never passed to Free.
func (a *arena) teardown(ops HostOps) error {
	if a == nil || a.hostBuf == nil || a.static {
		return nil
	}
	if a.free != nil {
		a.free(a.hostBuf)
	} else if ops.Free != nil {
		ops.Free(a.hostBuf)
	} else {
		// Dynamic mode without a free callback is a configuration error:
		// the caller owned a malloc'd buffer with no way to release it.
		return fdterrors.New(fdterrors.KindConfiguration, "free is required to tear down a dynamically allocated parser")
	}
	a.hostBuf = nil
	return nil
}

func (a *arena) allocNode() (uint32, *Node, error) {
	if len(a.nodes) == cap(a.nodes) {
		return nilIndex, nil, fdterrors.New(fdterrors.KindCapacity, "node table exhausted")
	}
	idx := uint32(len(a.nodes))
	a.nodes = append(a.nodes, Node{selfIndex: idx})
	return idx, &a.nodes[idx], nil
}

func (a *arena) allocProp() (uint32, *Property, error) {
	if len(a.props) == cap(a.props) {
		return nilIndex, nil, fdterrors.New(fdterrors.KindCapacity, "property table exhausted")
	}
	idx := uint32(len(a.props))
	a.props = append(a.props, Property{})
	return idx, &a.props[idx], nil
}

func (a *arena) node(idx uint32) *Node {
	if idx == nilIndex || int(idx) >= len(a.nodes) {
		return nil
	}
	return &a.nodes[idx]
}

func (a *arena) prop(idx uint32) *Property {
	if idx == nilIndex || int(idx) >= len(a.props) {
		return nil
	}
	return &a.props[idx]
}

// setPhandle records that node idx declares handle h, dropping silently
// if h falls outside the table (spec section 4.6: "if handle >= N_nodes
// the entry is dropped; no error is raised").
func (a *arena) setPhandle(h uint32, idx uint32) {
	if int(h) >= len(a.phandles) {
		return
	}
	a.phandles[h] = idx
}

// phandle returns the node index registered for handle h, or nilIndex.
func (a *arena) phandle(h uint32) uint32 {
	if int(h) >= len(a.phandles) {
		return nilIndex
	}
	return a.phandles[h]
}
