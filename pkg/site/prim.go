package site

import (
	"math"
)

// Edge is one cable run in a site's spanning tree, between two probe indices.
type Edge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Length float64 `json:"length"`
}

// Result is the outcome of a single Build.
type Result struct {
	// Probes is the number of probes in the site at build time.
	Probes int

	// Total is the continuous weight of the spanning tree.
	Total float64

	// Root is the first probe selected, the only one without a parent.
	Root int

	// Parents holds the tree neighbor of every probe; Parents[Root] == NoParent.
	Parents []int

	// Lengths holds, per probe, the length of the edge to its parent
	// (0 for the root).
	Lengths []float64
}

// Rounded returns the total rounded up to the next whole meter. This is the
// figure reported for a site.
func (r Result) Rounded() int {
	return int(math.Ceil(r.Total))
}

// Edges returns the tree edges (parent → child) in probe order.
func (r Result) Edges() []Edge {
	edges := make([]Edge, 0, len(r.Parents))
	for i, p := range r.Parents {
		if p == NoParent {
			continue
		}
		edges = append(edges, Edge{From: p, To: i, Length: r.Lengths[i]})
	}
	return edges
}

// Build computes the minimum spanning tree of the site with Prim's algorithm
// over the complete Euclidean graph of its probes.
//
// All working state is reset first. On each of the n rounds the unconnected
// probe closest to the tree is selected (ties go to the lowest index), the
// tree distances of the remaining probes are relaxed against it, and its
// distance is added to the total, except in the first round: the first probe
// selected is the root and contributes nothing.
//
// Build returns ErrNoProbes for an empty site. It runs in O(n²) time and
// memory.
func (s *Site) Build() (Result, error) {
	n := len(s.probes)
	if n == 0 {
		return Result{}, ErrNoProbes
	}
	s.reset()

	root := NoParent
	for round := 0; round < n; round++ {
		m := s.closestUnconnected()

		// Relax every probe still outside the tree against m. The strict
		// comparison keeps the first parent found on equal distances.
		for i := 0; i < n; i++ {
			if i == m || s.probes[i].Connected {
				continue
			}
			if d := s.distance.At(m, i); d < s.treeDist[i] {
				s.treeDist[i] = d
				s.parent[i] = m
			}
		}
		s.probes[m].Connected = true

		if round == 0 {
			root = m
			s.treeDist[m] = 0
			continue
		}
		s.total += s.treeDist[m]
	}

	lengths := make([]float64, n)
	for i := range lengths {
		if i != root {
			lengths[i] = s.treeDist[i]
		}
	}

	return Result{
		Probes:  n,
		Total:   s.total,
		Root:    root,
		Parents: append([]int(nil), s.parent...),
		Lengths: lengths,
	}, nil
}

// closestUnconnected scans for the unconnected probe with the smallest tree
// distance, keeping the first one seen on ties.
func (s *Site) closestUnconnected() int {
	m := -1
	for q := range s.probes {
		if s.probes[q].Connected {
			continue
		}
		if m == -1 || s.treeDist[q] < s.treeDist[m] {
			m = q
		}
	}
	return m
}
