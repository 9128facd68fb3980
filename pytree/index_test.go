package pytree

import (
	"testing"
)

// The tree mirrors the source `a.b(1)` with accurate byte offsets.
func indexFixture() (*Interior, *Index) {
	leaf := func(kind TokenKind, value string, pos int) *Leaf {
		l := NewLeaf(kind, value)
		l.Pos = pos
		return l
	}

	tree := NewInterior(ProdPower,
		leaf(TokName, "a", 0),
		NewInterior(ProdTrailer,
			leaf(TokOp, ".", 1),
			leaf(TokName, "b", 2),
		),
		NewInterior(ProdTrailer,
			leaf(TokOp, "(", 3),
			leaf(TokNumber, "1", 4),
			leaf(TokOp, ")", 5),
		),
	)

	return tree, NewIndex(tree)
}

func TestIndexAt(t *testing.T) {
	_, ix := indexFixture()

	type test struct {
		name  string
		pos   int
		token string
		isnil bool
	}

	tests := []test{
		{
			name:  "atom",
			pos:   0,
			token: "a",
		},
		{
			name:  "dot",
			pos:   1,
			token: ".",
		},
		{
			name:  "attribute",
			pos:   2,
			token: "b",
		},
		{
			name:  "open-paren",
			pos:   3,
			token: "(",
		},
		{
			name:  "argument",
			pos:   4,
			token: "1",
		},
		{
			name:  "close-paren",
			pos:   5,
			token: ")",
		},
		{
			name:  "on-the-left",
			pos:   -1,
			isnil: true,
		},
		{
			name:  "on-the-right",
			pos:   6,
			isnil: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := ix.At(tt.pos)
			if tt.isnil {
				if node != nil {
					t.Fatalf("no node was expected at position %d, got %v", tt.pos, node)
				}
				return
			}
			if node == nil {
				t.Fatalf("a node was expected at position %d", tt.pos)
			}
			leaf, ok := node.(*Leaf)
			if !ok {
				t.Fatalf("the innermost node at %d must be a token, got %T", tt.pos, node)
			}
			if leaf.Value != tt.token {
				t.Fatalf("token %q was expected at %d, got %q", tt.token, tt.pos, leaf.Value)
			}
		})
	}
}

func TestIndexPenaltyAt(t *testing.T) {
	tree, _ := indexFixture()

	// The index reflects whatever is on the tree at query time, so
	// annotations set after the build are visible too.
	dot := Leaves(tree)[1]
	dot.RaiseSplitPenalty(1000)

	ix := NewIndex(tree)

	if v, ok := ix.PenaltyAt(1); !ok || v != 1000 {
		t.Errorf("expected penalty 1000 at the dot, got %d (set=%v)", v, ok)
	}
	if _, ok := ix.PenaltyAt(0); ok {
		t.Error("no penalty was expected on the leading token")
	}
	if _, ok := ix.PenaltyAt(42); ok {
		t.Error("no penalty was expected outside the tree")
	}

	if leaf := ix.LeafAt(4); leaf == nil || leaf.Value != "1" {
		t.Error("LeafAt(4) must resolve to the argument token")
	}
	if leaf := ix.LeafAt(-5); leaf != nil {
		t.Errorf("LeafAt outside the tree must be nil, got %q", leaf.Value)
	}
}
