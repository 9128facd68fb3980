// Package splitpenalty assigns split penalties to the tokens of a Python
// concrete syntax tree.
//
// The pass is a single top-down walk. A fixed set of grammar productions
// gets a construct rule that marks token boundaries as costly to break;
// every other production is traversed child by child with no effect of
// its own. All rules funnel into one propagation primitive that raises
// penalties on the leaves of a subtree under a monotonic maximum-merge,
// so overlapping rules compose in any order.
package splitpenalty
