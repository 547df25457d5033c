// Package fdttest builds synthetic FDT blobs for use as test fixtures.
// It is a test-only writer: the production fdt package is read-only
// (spec section 1's "no writer/serializer" non-goal), so this package
// is never imported outside _test.go files.
package fdttest

import "encoding/binary"

const (
	magic          = 0xD00DFEED
	version        = 17
	lastCompatible = 16

	beginNode = 1
	endNode   = 2
	prop      = 3
	end       = 9
)

// Builder assembles a structure block and strings block incrementally
// and renders them into one big-endian FDT blob via Build.
type Builder struct {
	structure []byte
	strings   []byte
	stringOff map[string]uint32
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{stringOff: make(map[string]uint32)}
}

// BeginNode opens a node named name; every BeginNode must be matched by
// an EndNode.
func (b *Builder) BeginNode(name string) *Builder {
	b.appendU32(beginNode)
	b.appendPaddedName(name)
	return b
}

// EndNode closes the innermost open node.
func (b *Builder) EndNode() *Builder {
	b.appendU32(endNode)
	return b
}

// PropEmpty adds a zero-length property.
func (b *Builder) PropEmpty(name string) *Builder {
	b.appendU32(prop)
	b.appendU32(0)
	b.appendU32(b.intern(name))
	return b
}

// PropString adds a single NUL-terminated string property.
func (b *Builder) PropString(name, value string) *Builder {
	data := append([]byte(value), 0)
	return b.PropBytes(name, data)
}

// PropStringList adds a NUL-separated list-of-strings property.
func (b *Builder) PropStringList(name string, values ...string) *Builder {
	var data []byte
	for _, v := range values {
		data = append(data, v...)
		data = append(data, 0)
	}
	return b.PropBytes(name, data)
}

// PropU32 adds a single big-endian u32 cell property.
func (b *Builder) PropU32(name string, value uint32) *Builder {
	b.appendU32(prop)
	b.appendU32(4)
	b.appendU32(b.intern(name))
	b.appendU32(value)
	return b
}

// PropU32Array adds an array of big-endian u32 cells.
func (b *Builder) PropU32Array(name string, values ...uint32) *Builder {
	b.appendU32(prop)
	b.appendU32(uint32(len(values) * 4))
	b.appendU32(b.intern(name))
	for _, v := range values {
		b.appendU32(v)
	}
	return b
}

// PropBytes adds a raw-bytes property, padded to a 4-byte boundary in
// the rendered blob (logical length stays exact, per spec section 3).
func (b *Builder) PropBytes(name string, data []byte) *Builder {
	b.appendU32(prop)
	b.appendU32(uint32(len(data)))
	b.appendU32(b.intern(name))
	b.appendRawPadded(data)
	return b
}

// Nop inserts a NOP token, for tests that exercise skip-handling.
func (b *Builder) Nop() *Builder {
	b.appendU32(4)
	return b
}

// Build renders the header, empty memory-reservation map, structure
// block, and strings block into one contiguous big-endian blob.
func (b *Builder) Build() []byte {
	structure := append(append([]byte{}, b.structure...), u32Bytes(end)...)

	const headerSize = 40
	memRsvmapOff := uint32(headerSize)
	memRsvmapSize := uint32(16)
	structOff := memRsvmapOff + memRsvmapSize
	structSize := uint32(len(structure))
	stringsOff := structOff + structSize
	stringsSize := uint32(len(b.strings))
	totalSize := stringsOff + stringsSize

	header := make([]byte, headerSize)
	binary.BigEndian.PutUint32(header[0:], magic)
	binary.BigEndian.PutUint32(header[4:], totalSize)
	binary.BigEndian.PutUint32(header[8:], structOff)
	binary.BigEndian.PutUint32(header[12:], stringsOff)
	binary.BigEndian.PutUint32(header[16:], memRsvmapOff)
	binary.BigEndian.PutUint32(header[20:], version)
	binary.BigEndian.PutUint32(header[24:], lastCompatible)
	binary.BigEndian.PutUint32(header[28:], 0)
	binary.BigEndian.PutUint32(header[32:], stringsSize)
	binary.BigEndian.PutUint32(header[36:], structSize)

	blob := make([]byte, totalSize)
	copy(blob, header)
	copy(blob[structOff:], structure)
	copy(blob[stringsOff:], b.strings)
	return blob
}

func (b *Builder) appendU32(v uint32) {
	b.structure = append(b.structure, u32Bytes(v)...)
}

func u32Bytes(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

func (b *Builder) appendPaddedName(name string) {
	data := append([]byte(name), 0)
	b.appendRawPadded(data)
}

func (b *Builder) appendRawPadded(data []byte) {
	b.structure = append(b.structure, data...)
	for len(b.structure)%4 != 0 {
		b.structure = append(b.structure, 0)
	}
}

func (b *Builder) intern(name string) uint32 {
	if off, ok := b.stringOff[name]; ok {
		return off
	}
	off := uint32(len(b.strings))
	b.stringOff[name] = off
	b.strings = append(b.strings, name...)
	b.strings = append(b.strings, 0)
	return off
}
