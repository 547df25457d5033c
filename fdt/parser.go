package fdt

import (
	"time"

	fdterrors "github.com/deploymenttheory/go-fdt/fdt/errors"
	"github.com/deploymenttheory/go-fdt/fdt/metrics"
	"github.com/deploymenttheory/go-fdt/fdt/obslog"
)

// HostOps is the host interface the core consumes, spec section 6:
// Malloc/Free for the dynamic allocator configuration, and an optional
// OnError callback for format/configuration/capacity failures.
type HostOps struct {
	// Malloc allocates size bytes, at least pointer-aligned. Required
	// unless the parser is initialized via InitStatic.
	Malloc func(size int) []byte
	// Free releases a buffer previously returned by Malloc. Required for
	// Teardown in dynamic mode.
	Free func(buf []byte)
	// OnError receives a human-readable message on configuration/format/
	// capacity failure. Never called for lookup misses.
	OnError func(message string)

	// Log, if set, receives debug/error detail around Init/Teardown
	// (spec section 10's ambient logging). A nil Log discards output.
	Log *obslog.Logger
	// Metrics, if set, receives counters/histograms (spec section 10's
	// ambient metrics). A nil Metrics is a no-op.
	Metrics *metrics.Registry
}

// Parser holds one active parse. Per spec section 5, a Parser supports
// only one active parse at a time; a second Init call tears down the
// prior state first. Distinct *Parser values are fully independent and
// may be used concurrently by different goroutines; after Init returns,
// a single *Parser's query methods have no mutable state and are safe
// for concurrent reads.
type Parser struct {
	blob    []byte
	strings []byte
	arena   *arena
	root    uint32
	ops     HostOps
	log     *obslog.Logger
	metrics *metrics.Registry

	initialized bool
}

// NewParser returns an empty, uninitialized Parser.
func NewParser() *Parser {
	return &Parser{root: nilIndex}
}

// Init validates blob's header, pre-scans its structure block, acquires
// one dynamically-allocated arena via ops.Malloc, and parses the tree.
// On any format or configuration error, ops.OnError is invoked (if set)
// and the Parser is left in its empty state.
func (p *Parser) Init(blob []byte, ops HostOps) error {
	return p.init(blob, ops, nil)
}

// InitStatic is Init using a caller-supplied fixed buffer instead of
// ops.Malloc/Free, the Go rendering of spec section 4.2's static
// compile-time-sized configuration. ops.Malloc and ops.Free are unused.
func (p *Parser) InitStatic(blob []byte, staticBuf []byte, ops HostOps) error {
	return p.init(blob, ops, staticBuf)
}

func (p *Parser) init(blob []byte, ops HostOps, staticBuf []byte) error {
	if p.initialized {
		p.Teardown()
	}

	p.ops = ops
	p.log = ops.Log
	p.metrics = ops.Metrics
	session := p.log.Session()
	start := timeNow()

	h, err := parseHeader(blob)
	if err != nil {
		p.fail(session, err)
		return err
	}
	p.log.Debug(session, "fdt header", "total_size", h.totalSize, "version", h.version,
		"last_comp_version", h.lastCompVersion, "boot_cpu_id", h.bootCPUID)

	structStart := int(h.offStructs)
	structEnd := structStart + int(h.sizeStructs)
	stringsStart := int(h.offStrings)
	stringsEnd := stringsStart + int(h.sizeStrings)
	if structEnd > len(blob) || stringsEnd > len(blob) {
		e := fdterrors.New(fdterrors.KindFormat, "structure or strings block runs past end of blob")
		p.fail(session, e)
		return e
	}
	cells := blob[structStart:structEnd]
	strings := blob[stringsStart:stringsEnd]

	nodeCount, propCount := preScan(cells)
	p.log.Debug(session, "fdt pre-scan", "nodes", nodeCount, "props", propCount)

	a, err := newArena(nodeCount, propCount, ops, staticBuf)
	if err != nil {
		p.fail(session, err)
		return err
	}

	sp := &structParser{cells: cells, strings: strings, arena: a}

	var roots []uint32
	offset := 0
	for offset < sp.cellCount() {
		switch sp.cellAt(offset) {
		case tokenEnd:
			offset = sp.cellCount()
		case tokenNop:
			offset++
		case tokenBeginNode:
			idx, next, err := sp.parseNode(offset, rootAddrCells, rootSizeCells)
			if err != nil {
				p.fail(session, err)
				a.teardown(ops)
				return err
			}
			offset = next
			if idx != nilIndex {
				roots = append(roots, idx)
			}
		default:
			offset++
		}
	}

	// Link any additional top-level nodes as siblings of the first,
	// spec section 3: "the parser accepts multiple and links them as
	// siblings; the first encountered becomes the head."
	root := nilIndex
	if len(roots) > 0 {
		root = roots[0]
		for i := 0; i < len(roots); i++ {
			n := a.node(roots[i])
			n.parent = nilIndex
			if i+1 < len(roots) {
				n.nextSib = roots[i+1]
			} else {
				n.nextSib = nilIndex
			}
		}
	}

	p.blob = blob
	p.strings = strings
	p.arena = a
	p.root = root
	p.initialized = true

	for i := range a.nodes {
		a.nodes[i].owner = p
	}
	for i := range a.props {
		a.props[i].owner = p
	}

	if p.metrics != nil {
		p.metrics.InitTotal.Inc()
		p.metrics.InitDuration.Observe(time.Since(start).Seconds())
		p.metrics.NodesParsed.Observe(float64(len(a.nodes)))
		p.metrics.PropertiesParsed.Observe(float64(len(a.props)))
	}
	p.log.Debug(session, "fdt init complete", "nodes", len(a.nodes), "props", len(a.props))
	return nil
}

func (p *Parser) fail(session string, err error) {
	p.initialized = false
	p.log.Error(session, "fdt init failed", "error", err)
	if p.ops.OnError != nil {
		p.ops.OnError(err.Error())
	}
}

// Teardown releases the arena (via ops.Free in dynamic mode) and
// returns the Parser to its empty state, per spec section 3's
// lifecycle: "all destroyed together by teardown."
func (p *Parser) Teardown() {
	p.log.Debug("", "fdt teardown", "initialized", p.initialized)
	if p.arena != nil {
		p.arena.teardown(p.ops)
	}
	p.blob = nil
	p.strings = nil
	p.arena = nil
	p.root = nilIndex
	p.initialized = false
}

// Root returns the head of the top-level node list, or nil if the
// parser is empty or the blob contained no nodes.
func (p *Parser) Root() *Node {
	if p == nil || !p.initialized {
		return nil
	}
	return p.nodeAt(p.root)
}

func (p *Parser) nodeAt(idx uint32) *Node {
	if p == nil || p.arena == nil {
		return nil
	}
	return p.arena.node(idx)
}

func (p *Parser) propAt(idx uint32) *Property {
	if p == nil || p.arena == nil {
		return nil
	}
	return p.arena.prop(idx)
}

// timeNow exists so Init's duration measurement has one call site; it
// is a thin wrapper over time.Now rather than a test seam, since the
// fdt package itself never needs to mock wall-clock time.
func timeNow() time.Time {
	return time.Now()
}
