package fdt

import "encoding/binary"

// cellAt reads the big-endian 32-bit cell at cell offset idx within
// cells. The caller guarantees idx is in range; cell offsets are always
// 4-byte aligned by construction (spec section 4.1), so no unaligned
// host access is ever required.
//
// encoding/binary.BigEndian already performs the "endian-correcting
// access" spec section 4.1 asks for regardless of host byte order; this
// wrapper exists to centralize that single conversion point, per spec
// section 9's "centralize in one function" design note.
func cellAt(cells []byte, idx int) uint32 {
	off := idx * 4
	return binary.BigEndian.Uint32(cells[off : off+4])
}
