package pytree

import (
	"github.com/sirkon/rbtree"
)

// Index resolves source byte offsets to the innermost tree node covering
// them. It requires a tree whose leaves carry positions and is meant for
// consumers of the annotated tree, e.g. a layout solver asking which
// penalty is in effect right before a given offset.
type Index struct {
	tree *rbtree.Tree[*nodeSpan]
}

// NewIndex builds an index over every node of the given tree.
func NewIndex(root Node) *Index {
	ix := &Index{tree: rbtree.New[*nodeSpan]()}
	ix.add(root)
	return ix
}

func (ix *Index) add(node Node) {
	start, end := Span(node)
	if end <= start {
		return
	}
	// Spans are stored with inclusive ends. Ancestors are inserted before
	// their descendants; attachInto relies on that order.
	attachInto(ix.tree, &nodeSpan{start: start, end: end - 1, node: node})
	if n, ok := node.(*Interior); ok {
		for _, child := range n.Children() {
			ix.add(child)
		}
	}
}

// At returns the innermost node covering pos, nil when pos lies outside
// every indexed span.
func (ix *Index) At(pos int) Node {
	probe := &nodeSpan{start: pos, end: pos}
	res := ix.tree.Search(probe)
	if res == nil {
		return nil
	}
	return descendSearch(res, pos)
}

// LeafAt resolves pos to the token occupying it, nil when pos falls
// between tokens or outside the tree.
func (ix *Index) LeafAt(pos int) *Leaf {
	leaf, ok := ix.At(pos).(*Leaf)
	if !ok {
		return nil
	}
	return leaf
}

// PenaltyAt reports the split penalty asserted on the token at pos.
// ok is false when there is no token there or no penalty was set.
func (ix *Index) PenaltyAt(pos int) (value int, ok bool) {
	leaf := ix.LeafAt(pos)
	if leaf == nil {
		return 0, false
	}
	return leaf.SplitPenalty()
}

// nodeSpan stores an inclusive [start,end] span for a tree node and, if
// needed, a nested RB-tree for child spans fully contained in this span.
type nodeSpan struct {
	start int
	end   int

	node     Node
	children *rbtree.Tree[*nodeSpan]
}

// Cmp defines ordering for the RB-tree as "disjoint by position".
// - return -1 if this span is strictly before other (ends before other's start)
// - return  1 if this span is strictly after  other (starts after other's end)
// - return  0 if spans overlap in any way (including containment).
//
// NOTE: We rely on an *invariant of the input*: any two overlapping spans
// must be in a strict containment relationship (no partial overlaps). A
// well-formed CST with accurate token offsets guarantees this. Under the
// invariant, "equal" (0) means either superspan or subspan, and the tree's
// InsertReturn hands back the overlapping node so the containment
// structure can be fixed up in place.
func (n *nodeSpan) Cmp(other *nodeSpan) int {
	if n.end < other.start { // strictly before
		return -1
	}
	if n.start > other.end { // strictly after
		return 1
	}
	return 0 // overlapping (containment or equal boundaries)
}

func contains(a, b *nodeSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into RB-tree t, using the following containment rules:
//   - If t has no overlapping node, s is inserted as a sibling in t.
//   - If an overlapping node r exists and s contains r, mutate r in-place to
//     become s (so the pointer already present in the tree now represents s),
//     then re-attach the old r as a child of the new s.
//   - If r contains s, recursively attach s into r.children.
//
// Under the no-partial-overlap invariant these are the only cases.
func attachInto(t *rbtree.Tree[*nodeSpan], s *nodeSpan) {
	r := t.InsertReturn(s)
	if r == s {
		// Disjoint: brand new top-level entry.
		return
	}

	if contains(r, s) {
		// New span is a subspan of the existing node r, descend. Equal
		// boundaries take this branch too: ancestors are inserted first,
		// so a production covering exactly one token keeps that token as
		// the innermost entry.
		if r.children == nil {
			r.children = rbtree.New[*nodeSpan]()
		}

		n := *s
		*s = *r

		attachInto(s.children, &n)
		return
	}

	if contains(s, r) {
		// s is the superspan, overwrite r in-place.
		old := *r
		*r = *s

		if r.children == nil {
			r.children = rbtree.New[*nodeSpan]()
		}
		attachInto(r.children, &old)
		return
	}

	// Partial overlap violates the input invariant; trees with broken
	// token offsets are an upstream bug.
	panic("attachInto: partial-overlap spans are not supported")
}

func descendSearch(n *nodeSpan, pos int) Node {
	if n == nil {
		return nil
	}
	if n.children == nil {
		return n.node
	}
	probe := &nodeSpan{start: pos, end: pos}
	child := n.children.Search(probe)
	if child == nil {
		return n.node
	}
	if v := descendSearch(child, pos); v != nil {
		return v
	}
	return n.node
}
