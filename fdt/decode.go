package fdt

import (
	"bytes"
	"encoding/binary"
)

// ReadPropString implements spec section 4.8's read_prop_string: the
// payload is treated as a sequence of NUL-terminated strings, and the
// index-th one is returned. A NUL byte ends the current string; any
// subsequent non-NUL byte starts the next one, so consecutive NULs
// produce empty strings that still count toward the index.
func ReadPropString(pr *Property, index int) (string, bool) {
	if pr == nil || index < 0 {
		return "", false
	}
	payload := pr.payload
	start := 0
	for i := 0; i <= index; i++ {
		if start >= len(payload) {
			return "", false
		}
		nul := bytes.IndexByte(payload[start:], 0)
		if nul < 0 {
			if i == index {
				return string(payload[start:]), true
			}
			return "", false
		}
		if i == index {
			return string(payload[start : start+nul]), true
		}
		start += nul + 1
	}
	return "", false
}

// ReadPropByteString implements spec section 4.8's read_prop_bytestring.
// If out is nil, it returns the byte length. Otherwise it copies exactly
// pr.Len() bytes into out (which must be at least that long) and returns
// the length. No transformation is applied.
func ReadPropByteString(pr *Property, out []byte) int {
	if pr == nil {
		return 0
	}
	if out == nil {
		return len(pr.payload)
	}
	n := copy(out, pr.payload)
	return n
}

// ReadPropCellArray implements spec section 4.8's read_prop_cell_array.
// The payload is interpreted as an array of tuples of cellsPerEntry
// big-endian u32 cells. If out is nil, the tuple count
// (len/(4*cellsPerEntry), truncated) is returned. Otherwise every tuple
// is decoded into out as native uint32s and the tuple count is
// returned. If out is shorter than count*cellsPerEntry, decoding stops
// at the end of out and only the number of whole tuples that fit is
// returned. Returns 0 if pr is nil or cellsPerEntry is 0.
func ReadPropCellArray(pr *Property, cellsPerEntry int, out []uint32) int {
	if pr == nil || cellsPerEntry <= 0 {
		return 0
	}
	tupleBytes := cellsPerEntry * 4
	count := len(pr.payload) / tupleBytes
	if out == nil {
		return count
	}
	cells := count * cellsPerEntry
	if len(out) < cells {
		cells = len(out)
		count = cells / cellsPerEntry
	}
	for i := 0; i < cells; i++ {
		off := i * 4
		out[i] = binary.BigEndian.Uint32(pr.payload[off : off+4])
	}
	return count
}

// ReadPropU32 is a convenience wrapper over ReadPropCellArray for the
// common single-cell property shape.
func ReadPropU32(pr *Property) (uint32, bool) {
	var out [1]uint32
	if ReadPropCellArray(pr, 1, out[:]) != 1 {
		return 0, false
	}
	return out[0], true
}

// ReadPropU64 is a convenience wrapper over ReadPropCellArray for the
// common two-cell property shape (e.g. a 64-bit "reg" address with
// #address-cells=2).
func ReadPropU64(pr *Property) (uint64, bool) {
	var out [2]uint32
	if ReadPropCellArray(pr, 2, out[:]) != 1 {
		return 0, false
	}
	return uint64(out[0])<<32 | uint64(out[1]), true
}
