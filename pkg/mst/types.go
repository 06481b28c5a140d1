package mst

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned when a tree is requested for zero points.
var ErrEmpty = errors.New("mst: no points")

// ErrUnknownMethod is returned by ParseMethod for an unsupported name.
var ErrUnknownMethod = errors.New("mst: unknown method")

// Method selects how a site's tree is computed.
type Method string

const (
	// MethodPrim grows the tree from probe 0 with a linear scan (default).
	MethodPrim Method = "prim"

	// MethodKruskal sorts every pair and merges components with union-find.
	MethodKruskal Method = "kruskal"
)

// DefaultMethod is used when no method is configured.
const DefaultMethod = MethodPrim

// ParseMethod validates s and returns the matching Method. The empty string
// maps to DefaultMethod.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultMethod, nil
	case MethodPrim:
		return MethodPrim, nil
	case MethodKruskal:
		return MethodKruskal, nil
	default:
		return "", fmt.Errorf("%w: %q (must be 'prim' or 'kruskal')", ErrUnknownMethod, s)
	}
}

// Edge connects points U and V (indices into the input slice).
type Edge struct {
	U, V   int
	Length float64
}
