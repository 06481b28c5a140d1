package site

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/fibernet/pkg/geom"
)

// NoParent marks a probe that has no tree neighbor yet (or the root after a build).
const NoParent = -1

// Probe is a single sensor location within a site.
type Probe struct {
	geom.Point

	// Connected is true once the probe has been absorbed into the tree during
	// a build. It is meaningless between builds.
	Connected bool
}

// Site owns the probes of one survey area and the working state used while
// building its spanning tree.
type Site struct {
	probes []Probe

	distance *mat.SymDense // distance[i][j] between probe i and probe j
	treeDist []float64     // best known distance from probe i to the tree
	parent   []int         // tree neighbor through which probe i connects
	total    float64       // accumulated tree weight, valid after Build
}

// New creates a site from an ordered list of points.
func New(points ...geom.Point) *Site {
	s := &Site{probes: make([]Probe, 0, len(points))}
	for _, p := range points {
		s.AddProbe(p.X, p.Y)
	}
	return s
}

// AddProbe appends a probe at (x, y).
func (s *Site) AddProbe(x, y int) {
	s.probes = append(s.probes, Probe{Point: geom.Point{X: x, Y: y}})
	s.parent = append(s.parent, NoParent)
}

// ProbeCount returns the current number of probes.
func (s *Site) ProbeCount() int {
	return len(s.probes)
}

// Probe returns the probe at index i. It panics if i is out of range, like a
// slice index would.
func (s *Site) Probe(i int) Probe {
	return s.probes[i]
}

// Points returns a copy of the probe coordinates in site order.
func (s *Site) Points() []geom.Point {
	pts := make([]geom.Point, len(s.probes))
	for i, p := range s.probes {
		pts[i] = p.Point
	}
	return pts
}

// TotalDistance returns the weight accumulated by the last Build, or 0 if the
// site has not been built since it was created or mutated.
func (s *Site) TotalDistance() float64 {
	return s.total
}

// Parent returns the tree neighbor of probe i, or NoParent.
func (s *Site) Parent(i int) int {
	if i < 0 || i >= len(s.parent) {
		return NoParent
	}
	return s.parent[i]
}

// DistanceFromTree returns the distance at which probe i joined the tree in
// the last build. The root joins at 0. Before any build it is +Inf.
func (s *Site) DistanceFromTree(i int) float64 {
	if i < 0 || i >= len(s.treeDist) {
		return math.Inf(1)
	}
	return s.treeDist[i]
}

// Distance returns the cached distance between probes i and j from the last
// build.
func (s *Site) Distance(i, j int) float64 {
	if s.distance == nil {
		return geom.Distance(s.probes[i].Point, s.probes[j].Point)
	}
	return s.distance.At(i, j)
}

// reset clears all per-build state and recomputes the distance matrix from the
// current coordinates. The caller guarantees len(s.probes) > 0.
func (s *Site) reset() {
	n := len(s.probes)

	s.total = 0
	s.treeDist = make([]float64, n)
	s.parent = make([]int, n)
	for i := range s.probes {
		s.probes[i].Connected = false
		s.parent[i] = NoParent
		s.treeDist[i] = math.Inf(1)
	}

	s.distance = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s.distance.SetSym(i, j, geom.Distance(s.probes[i].Point, s.probes[j].Point))
		}
	}
}

// clearTree forgets every trace of the last build without touching the probes'
// coordinates.
func (s *Site) clearTree() {
	s.total = 0
	s.distance = nil
	s.treeDist = nil
	s.parent = make([]int, len(s.probes))
	for i := range s.probes {
		s.probes[i].Connected = false
		s.parent[i] = NoParent
	}
}
