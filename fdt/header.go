package fdt

import (
	"encoding/binary"

	fdterrors "github.com/deploymenttheory/go-fdt/fdt/errors"
)

// fdtMagic is the required value of the header's first field, spec
// section 4.3.
const fdtMagic = 0xD00DFEED

const headerSize = 40

// header mirrors the big-endian fixed layout from spec section 4.3.
type header struct {
	magic           uint32
	totalSize       uint32
	offStructs      uint32
	offStrings      uint32
	offMemRsvd      uint32
	version         uint32
	lastCompVersion uint32
	bootCPUID       uint32
	sizeStrings     uint32
	sizeStructs     uint32
}

func parseHeader(blob []byte) (header, error) {
	if len(blob) < headerSize {
		return header{}, fdterrors.New(fdterrors.KindFormat, "blob shorter than fdt header")
	}
	h := header{
		magic:           binary.BigEndian.Uint32(blob[0:4]),
		totalSize:       binary.BigEndian.Uint32(blob[4:8]),
		offStructs:      binary.BigEndian.Uint32(blob[8:12]),
		offStrings:      binary.BigEndian.Uint32(blob[12:16]),
		offMemRsvd:      binary.BigEndian.Uint32(blob[16:20]),
		version:         binary.BigEndian.Uint32(blob[20:24]),
		lastCompVersion: binary.BigEndian.Uint32(blob[24:28]),
		bootCPUID:       binary.BigEndian.Uint32(blob[28:32]),
		sizeStrings:     binary.BigEndian.Uint32(blob[32:36]),
		sizeStructs:     binary.BigEndian.Uint32(blob[36:40]),
	}
	if h.magic != fdtMagic {
		return header{}, fdterrors.New(fdterrors.KindFormat, "bad magic")
	}
	return h, nil
}
