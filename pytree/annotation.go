package pytree

// Annotation names a per-leaf annotation slot. The split penalty pass
// uses exactly one slot, but the store stays generic so later passes can
// attach their own annotations without touching the tree shape.
type Annotation int

const (
	// AnnotationSplitPenalty holds the cost of breaking the line
	// immediately before the leaf's token. Absent means the layout
	// consumer should apply its own default cost.
	AnnotationSplitPenalty Annotation = iota
)

// SplitPenalty reports the leaf's split penalty. ok is false when no
// penalty has been asserted.
func (l *Leaf) SplitPenalty() (value int, ok bool) {
	value, ok = l.annotations[AnnotationSplitPenalty]
	return value, ok
}

// RaiseSplitPenalty merges value into the leaf's split penalty with a
// monotonic maximum: absent counts as minus infinity, a present value is
// never lowered.
func (l *Leaf) RaiseSplitPenalty(value int) {
	cur, ok := l.annotations[AnnotationSplitPenalty]
	if ok && cur >= value {
		return
	}
	if l.annotations == nil {
		l.annotations = map[Annotation]int{}
	}
	l.annotations[AnnotationSplitPenalty] = value
}

// ClearSplitPenalty removes the penalty outright, re-opening the break
// point. This is the single sanctioned exception to monotonicity; only
// the comprehension filter rule uses it.
func (l *Leaf) ClearSplitPenalty() {
	delete(l.annotations, AnnotationSplitPenalty)
}
