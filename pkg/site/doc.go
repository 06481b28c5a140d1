// Package site holds the probes of a survey site and computes the minimum
// length of cable needed to connect them.
//
// # Overview
//
// A [Site] is an ordered list of probes with integer coordinates. Calling
// [Site.Build] runs Prim's algorithm over the complete graph of the site's
// probes, where every pair is connected by an edge weighted with the Euclidean
// distance. The result is the total length of the minimum spanning tree and
// the parent of each probe in that tree.
//
// # Working State
//
// Each build starts from scratch: the distance matrix, the per-probe distance
// to the growing tree, the parent pointers, and the connected flags are all
// recomputed from the current coordinates. Nothing leaks from one build into
// the next, so a site can be mutated with [Site.RemoveProbe] and rebuilt.
//
// # Determinism
//
// The probe closest to the tree is chosen by a linear scan that keeps the
// first minimum it sees. Ties therefore resolve to the lowest probe index and
// the first probe selected (the root) is always probe 0. The total weight does
// not depend on probe order; the parent structure may.
//
// # Collections
//
// A [Collection] owns the sites of one input in input order. It is the unit
// passed to the pipeline runner; there is no package-level state.
package site
