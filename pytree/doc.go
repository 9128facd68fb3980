// Package pytree defines the concrete syntax tree vocabulary the split
// penalty pass operates on.
//
// The entities in this package mirror the shape of a lib2to3-style Python
// parse tree: leaves are source tokens, interior nodes are named grammar
// productions with ordered children. Leaves carry a small annotation store
// where the pass records split penalties in place; interior nodes never
// hold annotations themselves.
package pytree
