package fdt

import "encoding/binary"

// recognizeSpecialProperty is invoked immediately after prop is
// attached to node (arena index nodeIdx), per spec section 4.6. The
// fast path rejects any name whose first byte is not '#', 'p', or 'l'
// before doing any string comparison.
func recognizeSpecialProperty(a *arena, nodeIdx uint32, node *Node, prop *Property) {
	if len(prop.name) == 0 {
		return
	}
	switch prop.name[0] {
	case '#':
		switch string(prop.name) {
		case "#address-cells":
			if v, ok := firstCell(prop); ok {
				node.addrCells = uint8(v)
			}
		case "#size-cells":
			if v, ok := firstCell(prop); ok {
				node.sizeCells = uint8(v)
			}
		}
	case 'p':
		if string(prop.name) == "phandle" {
			if v, ok := firstCell(prop); ok {
				a.setPhandle(v, nodeIdx)
			}
		}
	case 'l':
		if string(prop.name) == "linux,phandle" {
			if v, ok := firstCell(prop); ok {
				a.setPhandle(v, nodeIdx)
			}
		}
	}
}

func firstCell(prop *Property) (uint32, bool) {
	if len(prop.payload) < 4 {
		return 0, false
	}
	return binary.BigEndian.Uint32(prop.payload[0:4]), true
}
