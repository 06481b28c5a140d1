package mst

import (
	"sort"

	"github.com/matzehuels/fibernet/pkg/geom"
)

// Kruskal returns the minimum spanning tree of the complete Euclidean graph
// over pts, along with its total length.
//
// Edges are returned in acceptance order (ascending length, ties in pair
// order). A single point yields an empty tree of length 0; no points yields
// ErrEmpty.
func Kruskal(pts []geom.Point) ([]Edge, float64, error) {
	n := len(pts)
	if n == 0 {
		return nil, 0, ErrEmpty
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{U: i, V: j, Length: geom.Distance(pts[i], pts[j])})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Length < edges[b].Length
	})

	uf := newUnionFind(n)
	tree := make([]Edge, 0, n-1)
	var total float64
	for _, e := range edges {
		if !uf.union(e.U, e.V) {
			continue
		}
		tree = append(tree, e)
		total += e.Length
		if len(tree) == n-1 {
			break
		}
	}

	return tree, total, nil
}

// unionFind is a disjoint-set forest over 0..n-1.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// find returns the representative of x, halving the path on the way.
func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	return true
}
