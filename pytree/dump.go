package pytree

import (
	"fmt"
	"strings"
)

// Sprint renders the tree in an indented one-node-per-line form with any
// split penalties attached. Debug and test-failure output only; the
// format is not stable.
func Sprint(node Node) string {
	var sb strings.Builder
	sprintNode(&sb, node, 0)
	return sb.String()
}

func sprintNode(sb *strings.Builder, node Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *Leaf:
		fmt.Fprintf(sb, "%s%s %q", indent, n.Kind, n.Value)
		if v, ok := n.SplitPenalty(); ok {
			fmt.Fprintf(sb, " penalty=%d", v)
		}
		sb.WriteByte('\n')
	case *Interior:
		fmt.Fprintf(sb, "%s%s\n", indent, n.Kind)
		for _, child := range n.children {
			sprintNode(sb, child, depth+1)
		}
	}
}
