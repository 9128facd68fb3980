package splitpenalty

import (
	"github.com/rs/zerolog"

	"github.com/sirkon/pysplit/pytree"
	"github.com/sirkon/pysplit/style"
)

// ComputeSplitPenalties annotates every token of the tree with the cost
// of breaking the line right before it. The tree is mutated in place;
// re-running the pass over an already annotated tree is a no-op thanks
// to the maximum-merge.
func ComputeSplitPenalties(root pytree.Node, pen style.Penalties, log zerolog.Logger) {
	a := &assigner{pen: pen, log: log}
	a.visit(root)
}

// assigner carries the penalty value set and an optional trace logger
// through a single annotation pass.
type assigner struct {
	pen style.Penalties
	log zerolog.Logger
}

// visit dispatches on the production of interior nodes. Productions
// without a construct rule just recurse; bare leaves need no action.
func (a *assigner) visit(node pytree.Node) {
	n, ok := node.(*pytree.Interior)
	if !ok {
		return
	}

	switch n.Kind {
	case pytree.ProdClassDef:
		a.visitClassDef(n)
	case pytree.ProdFuncDef:
		a.visitFuncDef(n)
	case pytree.ProdLambDef:
		a.visitLambDef(n)
	case pytree.ProdParameters:
		a.visitParameters(n)
	case pytree.ProdDottedName:
		a.visitDottedName(n)
	case pytree.ProdDictSetMaker:
		a.visitDictSetMaker(n)
	case pytree.ProdComparison, pytree.ProdArithExpr, pytree.ProdTerm:
		a.visitArithmeticChain(n)
	case pytree.ProdTrailer:
		a.visitTrailer(n)
	case pytree.ProdPower:
		a.visitPower(n)
	case pytree.ProdSubscript:
		a.visitSubscript(n)
	case pytree.ProdCompFor:
		a.visitCompFor(n)
	case pytree.ProdCompIf:
		a.visitCompIf(n)
	default:
		a.visitChildren(n)
	}
}

func (a *assigner) visitChildren(node *pytree.Interior) {
	for _, child := range node.Children() {
		a.visit(child)
	}
}

// classdef ::= 'class' NAME ['(' [arglist] ')'] ':' suite
func (a *assigner) visitClassDef(node *pytree.Interior) {
	// NAME
	a.setUnbreakable(node.Child(1))
	if node.NumChildren() > 4 {
		// opening '(' of the base class list
		a.setUnbreakable(node.Child(2))
	}
	// ':'
	a.setUnbreakable(node.Child(node.NumChildren() - 2))
	a.visitChildren(node)
}

// funcdef ::= 'def' NAME parameters ['->' test] ':' suite
//
// No break before the function name and before the colon that ends the
// signature. The parameters production handles the rest.
func (a *assigner) visitFuncDef(node *pytree.Interior) {
	colonIdx := 1
	for production(node.Child(colonIdx)) == pytree.ProdSimpleStmt {
		colonIdx++
	}
	a.setUnbreakable(node.Child(colonIdx))
	for colonIdx < node.NumChildren() {
		if leafValue(node.Child(colonIdx)) == ":" {
			break
		}
		colonIdx++
	}
	a.setUnbreakable(node.Child(colonIdx))
	a.visitChildren(node)
}

// lambdef ::= 'lambda' [varargslist] ':' test
//
// Glue the lambda head up to and including the colon.
func (a *assigner) visitLambDef(node *pytree.Interior) {
	hasArglist := leafValue(node.Child(1)) != ":"
	n := 2
	if hasArglist {
		n = 3
	}
	a.setUnbreakableOnChildren(node, n)
}

// parameters ::= '(' [typedargslist] ')'
func (a *assigner) visitParameters(node *pytree.Interior) {
	a.visitChildren(node)

	// Can't break before the opening paren of a parameter list.
	a.setUnbreakable(node.Child(0))
	if node.NumChildren() == 2 {
		// Don't split an empty argument list if at all possible.
		a.setStronglyConnected(node.Child(1))
	}
}

// dotted_name ::= NAME ('.' NAME)*
func (a *assigner) visitDottedName(node *pytree.Interior) {
	a.setUnbreakableOnChildren(node, node.NumChildren())
}

// dictsetmaker ::= ( (test ':' test
//
//	(comp_for | (',' test ':' test)* [','])) |
//	(test (comp_for | (',' test)* [','])) )
func (a *assigner) visitDictSetMaker(node *pytree.Interior) {
	var prev pytree.Node
	for _, child := range node.Children() {
		a.visit(child)
		if leafValue(child) == ":" {
			// A dictionary key. Keep it glued to its colon.
			a.setStronglyConnected(prev, child)
		}
		prev = child
	}
}

// comparison ::= expr (comp_op expr)*
// arith_expr ::= term (('+'|'-') term)*
// term       ::= factor (('*'|'/'|'%'|'//') factor)*
func (a *assigner) visitArithmeticChain(node *pytree.Interior) {
	a.visitChildren(node)
	a.setArithmetic(node)
}

// trailer ::= '(' [arglist] ')' | '[' subscriptlist ']' | '.' NAME
func (a *assigner) visitTrailer(node *pytree.Interior) {
	a.visitChildren(node)
	switch leafValue(node.Child(0)) {
	case ".":
		a.setStronglyConnected(node.Child(0), node.LastChild())
	case "[":
		a.setStronglyConnected(node.LastChild())
	}
}

// power ::= atom trailer* ['**' factor]
func (a *assigner) visitPower(node *pytree.Interior) {
	a.visitChildren(node)

	// See if this chain is wrapped in parentheses. If it is, some of the
	// restrictions below are relaxed.
	wrapped := parenWrapped(node)

	// When an atom is followed by a trailer, no break between them.
	// E.g. arr[idx] - no break allowed between 'arr' and '['.
	if node.NumChildren() > 1 && production(node.Child(1)) == pytree.ProdTrailer {
		// The trailer is a whole subtree; only its first token ('(',
		// '[' or '.') gets pinned.
		first := node.Child(1).(*pytree.Interior)
		a.setUnbreakable(first.Child(0))

		// With more trailers in the sequence, the last token of trailer
		// i and the first token of trailer i+1 form an unbreakable
		// region, e.g. foo.bar.baz(1): no break before either '.' or
		// '(' relative to the name preceding them.
		prevIdx := 1
		for prevIdx < node.NumChildren()-1 {
			curIdx := prevIdx + 1
			if production(node.Child(curIdx)) != pytree.ProdTrailer {
				break
			}
			prev := node.Child(prevIdx).(*pytree.Interior)
			cur := node.Child(curIdx).(*pytree.Interior)
			if leafValue(prev.LastChild()) != ")" {
				// Not a call: its last token may not be split from
				// whatever follows. After a call's closing paren a
				// split is tolerated, though undesirable.
				a.setUnbreakable(prev.LastChild())
			}
			if !wrapped {
				// Without surrounding parentheses the '.' must stay on
				// the same line. Wrapping the chain in parentheses is
				// the escape hatch for builder-style call chains.
				a.setUnbreakable(cur.Child(0))
			}
			prevIdx = curIdx
		}
	}

	// Don't split before the last ')' of a non-empty call, in any
	// trailer of the chain. Empty '()' stays splittable: forcing it
	// together can be impossible under a hard width limit.
	for _, child := range node.Children()[1:] {
		if production(child) != pytree.ProdTrailer {
			break
		}
		trailer := child.(*pytree.Interior)
		if leafValue(trailer.Child(0)) == "(" && trailer.NumChildren() > 2 {
			a.setUnbreakable(trailer.LastChild())
		}
	}
}

// subscript ::= test | [test] ':' [test] [sliceop]
func (a *assigner) visitSubscript(node *pytree.Interior) {
	a.setStronglyConnected(node.Children()...)
	a.visitChildren(node)
}

// comp_for ::= 'for' exprlist 'in' testlist_safe [comp_iter]
func (a *assigner) visitCompFor(node *pytree.Interior) {
	a.setStronglyConnected(node.Children()[1:]...)
	a.visitChildren(node)
}

// comp_if ::= 'if' old_test [comp_iter]
//
// The leading 'if' deliberately loses any penalty set so far: a break
// right before a comprehension filter is a good place to split.
func (a *assigner) visitCompIf(node *pytree.Interior) {
	lead := pytree.FirstLeaf(node.Child(0))
	a.trace("clear", lead)
	lead.ClearSplitPenalty()
	a.setStronglyConnected(node.Children()[1:]...)
	a.visitChildren(node)
}

func (a *assigner) trace(rule string, node pytree.Node) {
	if a.log.GetLevel() > zerolog.TraceLevel {
		return
	}
	first := pytree.FirstLeaf(node)
	a.log.Trace().
		Str("rule", rule).
		Str("token", first.Value).
		Int("pos", first.Pos).
		Msg("split penalty")
}

// production returns the grammar production of an interior node,
// ProdInvalid for leaves.
func production(node pytree.Node) pytree.Production {
	if n, ok := node.(*pytree.Interior); ok {
		return n.Kind
	}
	return pytree.ProdInvalid
}

// leafValue returns the token text of a leaf, "" for interior nodes.
func leafValue(node pytree.Node) string {
	if n, ok := node.(*pytree.Leaf); ok {
		return n.Value
	}
	return ""
}

// parenWrapped reports whether the node sits directly inside a
// parenthesized atom.
func parenWrapped(node *pytree.Interior) bool {
	parent := node.Parent()
	if parent == nil || parent.Kind != pytree.ProdAtom {
		return false
	}
	return leafValue(parent.Child(0)) == "(" && leafValue(parent.LastChild()) == ")"
}
