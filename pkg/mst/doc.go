// Package mst computes Euclidean minimum spanning trees over plain point sets.
//
// The site package builds trees with a literal Prim scan whose tie-breaks are
// part of the reported output. This package provides an independent Kruskal
// solver over the same complete graph, used to cross-check totals and as an
// alternate method when only the weight matters.
//
// # Kruskal
//
// All n(n-1)/2 pairs are generated, stably sorted by length, and merged with a
// union-find (path halving, union by rank) until n-1 edges are accepted.
// Time is O(n² log n), memory O(n²), which is fine at a few hundred probes.
//
// # Methods
//
// [MethodPrim] and [MethodKruskal] name the two strategies; [ParseMethod]
// validates user input. Both yield the same total on every input; only
// Prim's parent structure is stable against the reference outputs.
package mst
