package splitpenalty

import (
	"github.com/sirkon/pysplit/pytree"
)

// raiseSubtree recursively raises the split penalty of every leaf under
// the given nodes to at least value. An existing higher penalty stays;
// an absent penalty counts as minus infinity.
func (a *assigner) raiseSubtree(value int, nodes ...pytree.Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case *pytree.Leaf:
			n.RaiseSplitPenalty(value)
		case *pytree.Interior:
			for _, child := range n.Children() {
				a.raiseSubtree(value, child)
			}
		}
	}
}

func (a *assigner) setUnbreakable(node pytree.Node) {
	a.trace("unbreakable", node)
	a.raiseSubtree(a.pen.Unbreakable, node)
}

func (a *assigner) setStronglyConnected(nodes ...pytree.Node) {
	for _, node := range nodes {
		a.trace("strongly-connected", node)
	}
	a.raiseSubtree(a.pen.StronglyConnected, nodes...)
}

// setUnbreakableOnChildren visits every child of node, then glues the
// first n children into one unbreakable run (children 1..n-1 get the
// penalty; a break before child 0 stays allowed).
func (a *assigner) setUnbreakableOnChildren(node *pytree.Interior, n int) {
	for _, child := range node.Children() {
		a.visit(child)
	}
	for i := 1; i < n; i++ {
		a.setUnbreakable(node.Child(i))
	}
}

// setArithmetic raises every leaf of the subtree to at least the
// arithmetic penalty, except the subtree's first leaf: a break right
// before the whole expression remains as cheap as it was.
func (a *assigner) setArithmetic(node pytree.Node) {
	a.trace("arithmetic", node)
	a.recArithmetic(node, pytree.FirstLeaf(node))
}

func (a *assigner) recArithmetic(node pytree.Node, first *pytree.Leaf) {
	switch n := node.(type) {
	case *pytree.Leaf:
		if n == first {
			return
		}
		n.RaiseSplitPenalty(a.pen.Arithmetic)
	case *pytree.Interior:
		for _, child := range n.Children() {
			a.recArithmetic(child, first)
		}
	}
}
