package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/fibernet/pkg/geom"
	"github.com/matzehuels/fibernet/pkg/site"
)

func buildTriangle(t *testing.T) *site.Site {
	t.Helper()
	return site.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 3}, geom.Point{X: 4, Y: 0})
}

func TestToDOT(t *testing.T) {
	s := buildTriangle(t)
	res, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	dot := ToDOT(s.Points(), res, Options{Extent: 400, Lengths: true})

	for _, want := range []string{
		"graph G {",
		`p0 [label="1", tooltip="0,0", pos="0.00,0.00!", fillcolor="#1f6feb"`,
		`p2 [label="3", tooltip="4,0", pos="400.00,0.00!"]`,
		`p1 [label="2", tooltip="0,3", pos="0.00,300.00!"]`,
		`p0 -- p1 [label="3"];`,
		`p0 -- p2 [label="4"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() should produce an undirected graph")
	}
}

func TestToDOTRemoved(t *testing.T) {
	s := buildTriangle(t)
	removed, _ := s.Without(1)
	res, err := removed.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	dot := ToDOT(removed.Points(), res, Options{Removed: []geom.Point{{X: 0, Y: 3}}})
	if !strings.Contains(dot, `r0 [label="x", tooltip="0,3", style=dashed`) {
		t.Errorf("ToDOT() should mark the removed probe:\n%s", dot)
	}
	if got := strings.Count(dot, " -- "); got != 1 {
		t.Errorf("ToDOT() has %d edges, want 1", got)
	}
}

func TestScalerCoincident(t *testing.T) {
	sc := newScaler([]geom.Point{{X: 5, Y: 5}, {X: 5, Y: 5}}, DefaultExtent)
	if x, y := sc.scale(geom.Point{X: 5, Y: 5}); x != 0 || y != 0 {
		t.Errorf("scale() = (%v, %v), want (0, 0)", x, y)
	}
}

func TestRenderSVG(t *testing.T) {
	s := buildTriangle(t)
	res, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	svg, err := RenderSVG(context.Background(), ToDOT(s.Points(), res, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not an SVG")
	}
}
