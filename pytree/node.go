package pytree

// Node is the base interface implemented by both tree node variants.
// A node is either a Leaf holding a single source token or an Interior
// node holding a grammar production with ordered children.
type Node interface {
	// Parent returns the enclosing interior node, nil at the root.
	// The reference is non-owning and exists for lookahead queries only.
	Parent() *Interior

	setParent(*Interior)
	isNode()
}

// Leaf represents a single source token.
type Leaf struct {
	Kind  TokenKind
	Value string

	// Pos is the byte offset of the token in the source, when known.
	// Position information is optional; only the span index requires it.
	Pos int

	parent      *Interior
	annotations map[Annotation]int
}

// NewLeaf creates a detached leaf for the given token.
func NewLeaf(kind TokenKind, value string) *Leaf {
	return &Leaf{Kind: kind, Value: value}
}

// End returns the byte offset just past the token.
func (l *Leaf) End() int { return l.Pos + len(l.Value) }

func (l *Leaf) Parent() *Interior     { return l.parent }
func (l *Leaf) setParent(p *Interior) { l.parent = p }
func (*Leaf) isNode()                 {}

// Interior represents a grammar production with ordered children.
// Children are owned by the node; parents are back-references only.
type Interior struct {
	Kind Production

	children []Node
	parent   *Interior
}

// NewInterior creates an interior node over the given children, taking
// ownership and installing parent back-references.
func NewInterior(kind Production, children ...Node) *Interior {
	n := &Interior{Kind: kind, children: children}
	for _, child := range children {
		child.setParent(n)
	}
	return n
}

// Children returns the ordered child sequence. The slice is shared with
// the node; callers must not modify it.
func (n *Interior) Children() []Node { return n.children }

// NumChildren returns the number of direct children.
func (n *Interior) NumChildren() int { return len(n.children) }

// Child returns the i-th direct child. Out-of-range access panics, which
// matches the fail-fast contract for malformed trees.
func (n *Interior) Child(i int) Node { return n.children[i] }

// LastChild returns the final direct child.
func (n *Interior) LastChild() Node { return n.children[len(n.children)-1] }

func (n *Interior) Parent() *Interior     { return n.parent }
func (n *Interior) setParent(p *Interior) { n.parent = p }
func (*Interior) isNode()                 {}

// FirstLeaf returns the leftmost token under node, descending through
// first children. A leaf returns itself.
func FirstLeaf(node Node) *Leaf {
	for {
		switch n := node.(type) {
		case *Leaf:
			return n
		case *Interior:
			node = n.Child(0)
		}
	}
}

// LastLeaf returns the rightmost token under node.
func LastLeaf(node Node) *Leaf {
	for {
		switch n := node.(type) {
		case *Leaf:
			return n
		case *Interior:
			node = n.LastChild()
		}
	}
}

// Leaves collects every token under node in source order.
func Leaves(node Node) []*Leaf {
	var out []*Leaf
	collectLeaves(node, &out)
	return out
}

func collectLeaves(node Node, out *[]*Leaf) {
	switch n := node.(type) {
	case *Leaf:
		*out = append(*out, n)
	case *Interior:
		for _, child := range n.children {
			collectLeaves(child, out)
		}
	}
}

// Span returns the byte range [start,end) covered by node, derived from
// its first and last leaves. Meaningful only on trees with positions.
func Span(node Node) (start, end int) {
	return FirstLeaf(node).Pos, LastLeaf(node).End()
}
