package fdt

import "strings"

// Find implements spec section 4.7's find(path). Path syntax is
// slash-separated segments; leading, trailing, and repeated slashes are
// permitted. "" and "/" both return the root.
func (p *Parser) Find(path string) *Node {
	if p == nil {
		return nil
	}
	segments := splitPath(path)
	n := p.Root()
	for _, seg := range segments {
		if n == nil {
			return nil
		}
		n = p.FindChild(n, seg)
	}
	return n
}

func splitPath(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// FindChild implements spec section 4.7's find_child: a linear scan of
// node's children, matching name against each child's prefix before '@'.
func (p *Parser) FindChild(n *Node, name string) *Node {
	if p == nil || n == nil {
		return nil
	}
	p.metrics.ObserveQuery("find_child")
	for c := n.Child(); c != nil; c = c.Sibling() {
		if namePrefix(c.name) == name {
			return c
		}
	}
	return nil
}

// namePrefix returns the portion of a raw node name before the first
// '@', or the whole name if there is none.
func namePrefix(name []byte) string {
	for i, b := range name {
		if b == '@' {
			return string(name[:i])
		}
	}
	return string(name)
}

// FindProp implements spec section 4.7's find_prop: a linear scan of
// node's properties by exact full-name match.
func (p *Parser) FindProp(n *Node, name string) *Property {
	if p == nil || n == nil {
		return nil
	}
	p.metrics.ObserveQuery("find_prop")
	for pr := n.Prop(0); pr != nil; pr = p.propAt(pr.next) {
		if pr.Name() == name {
			return pr
		}
	}
	return nil
}

// FindCompatible implements spec section 4.7's find_compatible: scans
// nodes in node-table order (insertion order during parse, i.e.
// depth-first pre-order of the blob's BEGIN_NODE stream) starting just
// after start (or from index 0 if start is nil), returning the first
// node whose "compatible" property contains str as one of its
// NUL-separated entries.
func (p *Parser) FindCompatible(start *Node, str string) *Node {
	if p == nil || p.arena == nil {
		return nil
	}
	p.metrics.ObserveQuery("find_compatible")
	begin := 0
	if start != nil {
		begin = int(p.indexOf(start)) + 1
	}
	for i := begin; i < len(p.arena.nodes); i++ {
		n := &p.arena.nodes[i]
		compat := p.findPropOnNode(n, "compatible")
		if compat == nil {
			continue
		}
		for idx := 0; ; idx++ {
			s, ok := ReadPropString(compat, idx)
			if !ok {
				break
			}
			if s == str {
				return n
			}
		}
	}
	return nil
}

// findPropOnNode is FindProp without the query counter, used internally
// by FindCompatible's hot loop.
func (p *Parser) findPropOnNode(n *Node, name string) *Property {
	for pr := n.Prop(0); pr != nil; pr = p.propAt(pr.next) {
		if pr.Name() == name {
			return pr
		}
	}
	return nil
}

// FindPhandle implements spec section 4.7's find_phandle.
func (p *Parser) FindPhandle(h uint32) *Node {
	if p == nil || p.arena == nil {
		return nil
	}
	p.metrics.ObserveQuery("find_phandle")
	return p.nodeAt(p.arena.phandle(h))
}

// Stat implements spec section 4.7's stat(node): counts children,
// properties, and siblings in O(n) each. For the synthetic root, Name
// is the literal string "/".
func (p *Parser) Stat(n *Node) Stat {
	if p == nil || n == nil {
		return Stat{}
	}
	var s Stat
	if n == p.Root() {
		s.Name = "/"
	} else {
		s.Name = n.Name()
	}
	for c := n.Child(); c != nil; c = c.Sibling() {
		s.ChildCount++
	}
	for pr := n.Prop(0); pr != nil; pr = p.propAt(pr.next) {
		s.PropCount++
	}
	if parent := n.Parent(); parent != nil {
		for c := parent.Child(); c != nil; c = c.Sibling() {
			s.SiblingCount++
		}
	}
	return s
}

// Walk performs a depth-first pre-order traversal in node-table order
// (the same order FindCompatible uses) starting at start, or from the
// first parsed node if start is nil. It stops early if visit returns
// false. Walk supplements spec section 4.7 with a general enumerator;
// it does not change any existing operation's semantics.
func (p *Parser) Walk(start *Node, visit func(*Node) bool) {
	if p == nil || p.arena == nil {
		return
	}
	begin := 0
	if start != nil {
		begin = int(p.indexOf(start))
	}
	for i := begin; i < len(p.arena.nodes); i++ {
		n := &p.arena.nodes[i]
		if !visit(n) {
			return
		}
	}
}

// indexOf returns n's position in the node arena, assuming n was
// produced by this Parser.
func (p *Parser) indexOf(n *Node) uint32 {
	return n.selfIndex
}
