// Package pysplit computes split penalties over a parsed Python source
// tree: for every token, the numeric cost of breaking the line right
// before it. A downstream line-layout solver uses the penalties to pick
// actual breaks under a width limit.
//
// The package does not parse, measure, or render anything itself; it
// takes a concrete syntax tree built by an external parser and hands the
// same tree back annotated in place.
package pysplit
