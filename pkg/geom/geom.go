// Package geom provides the planar primitives shared by the site and MST
// packages.
//
// Coordinates are integers (meters within a survey area), but all distances
// are computed in float64 so that a spanning tree over them can be summed
// without intermediate rounding.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D location with integer coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats p the way it appears in site input files ("x,y").
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Distance returns the Euclidean distance between p1 and p2.
//
// The squared differences are converted to float64 before summing so large
// coordinates cannot overflow, and the result is sqrt(dx² + dy²) rather than
// math.Hypot to keep totals identical to the reference outputs.
func Distance(p1, p2 Point) float64 {
	dx := float64(p1.X - p2.X)
	dy := float64(p1.Y - p2.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
