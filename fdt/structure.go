package fdt

import (
	"bytes"

	fdterrors "github.com/deploymenttheory/go-fdt/fdt/errors"
)

// Structure-block token values, spec section 4.5.
const (
	tokenBeginNode = 1
	tokenEndNode   = 2
	tokenProp      = 3
	tokenNop       = 4
	tokenEnd       = 9
)

// rootAddrCells and rootSizeCells are the root node's defaults absent
// any #address-cells/#size-cells override, spec section 4.5.
const (
	rootAddrCells = 2
	rootSizeCells = 1
)

// structParser drives the recursive-descent parse of the structure
// block into the arena, threading the current addr/size-cells down the
// tree per spec section 4.5's inheritance rule.
type structParser struct {
	cells   []byte // structure block bytes
	strings []byte // strings block bytes
	arena   *arena
}

// cellCount is the number of 32-bit cells in the structure block.
func (sp *structParser) cellCount() int {
	return len(sp.cells) / 4
}

func (sp *structParser) cellAt(offset int) uint32 {
	return cellAt(sp.cells, offset)
}

// parseNode implements spec section 4.5's parse_node. offset is a cell
// index; it returns the new node's arena index (or nilIndex if the
// current cell is not BEGIN_NODE) and the advanced cell offset.
func (sp *structParser) parseNode(offset, inheritedAddr, inheritedSize int) (uint32, int, error) {
	if offset >= sp.cellCount() || sp.cellAt(offset) != tokenBeginNode {
		return nilIndex, offset, nil
	}
	offset++ // past BEGIN_NODE

	nameStart := offset * 4
	nameEnd := nameStart
	for nameEnd < len(sp.cells) && sp.cells[nameEnd] != 0 {
		nameEnd++
	}
	name := sp.cells[nameStart:nameEnd]
	nameLen := nameEnd - nameStart + 1 // include the NUL
	offset += (nameLen + 3) / 4        // padded to 4-byte boundary

	idx, node, err := sp.arena.allocNode()
	if err != nil {
		return nilIndex, offset, err
	}
	node.name = name
	node.addrCells = uint8(inheritedAddr)
	node.sizeCells = uint8(inheritedSize)
	node.parent = nilIndex
	node.firstChild = nilIndex
	node.nextSib = nilIndex
	node.firstProp = nilIndex

	for {
		if offset >= sp.cellCount() {
			return nilIndex, offset, fdterrors.New(fdterrors.KindFormat, "node has no terminating tag")
		}
		switch sp.cellAt(offset) {
		case tokenEndNode:
			offset++
			return idx, offset, nil

		case tokenBeginNode:
			childIdx, next, err := sp.parseNode(offset, int(node.addrCells), int(node.sizeCells))
			if err != nil {
				return nilIndex, offset, err
			}
			offset = next
			if childIdx != nilIndex {
				child := sp.arena.node(childIdx)
				child.parent = idx
				child.nextSib = node.firstChild
				node.firstChild = childIdx
			}

		case tokenProp:
			propIdx, next, err := sp.parseProp(offset + 1)
			if err != nil {
				return nilIndex, offset, err
			}
			offset = next
			prop := sp.arena.prop(propIdx)
			prop.next = node.firstProp
			node.firstProp = propIdx
			recognizeSpecialProperty(sp.arena, idx, node, prop)

		default:
			offset++
		}
	}
}

// parseProp implements spec section 4.5's parse_prop. offset points
// just past the PROP token. Returns the new property's arena index and
// the advanced cell offset.
func (sp *structParser) parseProp(offset int) (uint32, int, error) {
	if offset+1 >= sp.cellCount() {
		return nilIndex, offset, fdterrors.New(fdterrors.KindFormat, "truncated property header")
	}
	length := sp.cellAt(offset)
	nameOffset := sp.cellAt(offset + 1)
	offset += 2

	payloadStart := offset * 4
	payloadEnd := payloadStart + int(length)
	if payloadEnd > len(sp.cells) {
		return nilIndex, offset, fdterrors.New(fdterrors.KindFormat, "property payload runs past structure block")
	}
	payload := sp.cells[payloadStart:payloadEnd]
	offset += (int(length) + 3) / 4

	name := propertyName(sp.strings, int(nameOffset))

	idx, prop, err := sp.arena.allocProp()
	if err != nil {
		return nilIndex, offset, err
	}
	prop.name = name
	prop.payload = payload
	prop.next = nilIndex
	return idx, offset, nil
}

// propertyName returns the NUL-terminated string at byte offset off
// within the strings block, trimmed of its terminator.
func propertyName(strings []byte, off int) []byte {
	if off < 0 || off > len(strings) {
		return nil
	}
	rest := strings[off:]
	if i := bytes.IndexByte(rest, 0); i >= 0 {
		return rest[:i]
	}
	return rest
}
