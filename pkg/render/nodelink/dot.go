package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/fibernet/pkg/geom"
	"github.com/matzehuels/fibernet/pkg/site"
)

// DefaultExtent is the drawing size, in points, of the longest side of a
// site's bounding box.
const DefaultExtent = 720.0

// Options configures node-link diagram rendering.
type Options struct {
	// Extent is the size in points of the longest side of the drawing.
	// Zero means DefaultExtent.
	Extent float64

	// Lengths labels every edge with its cable length.
	Lengths bool

	// Removed lists probes that were taken out of the site. They are drawn
	// as dashed nodes without edges.
	Removed []geom.Point
}

// ToDOT converts a site's spanning tree to Graphviz DOT format.
//
// Probes are pinned at their coordinates (scaled to Options.Extent, y axis
// pointing up), so the output must be laid out with neato, which is what
// [RenderSVG] does. The root probe is drawn filled.
func ToDOT(pts []geom.Point, res site.Result, opts Options) string {
	if opts.Extent <= 0 {
		opts.Extent = DefaultExtent
	}
	sc := newScaler(append(append([]geom.Point(nil), pts...), opts.Removed...), opts.Extent)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, width=0.3, fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#1f6feb\", penwidth=2, fontsize=9];\n")
	buf.WriteString("\n")

	for i, p := range pts {
		x, y := sc.scale(p)
		attrs := fmt.Sprintf("label=\"%d\", tooltip=%q, pos=\"%.2f,%.2f!\"", i+1, p.String(), x, y)
		if i == res.Root && res.Probes > 0 {
			attrs += ", fillcolor=\"#1f6feb\", fontcolor=white"
		}
		fmt.Fprintf(&buf, "  p%d [%s];\n", i, attrs)
	}
	for i, p := range opts.Removed {
		x, y := sc.scale(p)
		fmt.Fprintf(&buf, "  r%d [label=\"x\", tooltip=%q, style=dashed, color=\"#cf222e\", pos=\"%.2f,%.2f!\"];\n",
			i, p.String(), x, y)
	}

	buf.WriteString("\n")
	for _, e := range res.Edges() {
		if opts.Lengths {
			fmt.Fprintf(&buf, "  p%d -- p%d [label=\"%.0f\"];\n", e.From, e.To, e.Length)
		} else {
			fmt.Fprintf(&buf, "  p%d -- p%d;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// scaler maps site coordinates into the drawing area.
type scaler struct {
	minX, minY int
	factor     float64
}

func newScaler(pts []geom.Point, extent float64) scaler {
	if len(pts) == 0 {
		return scaler{factor: 1}
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	span := max(maxX-minX, maxY-minY)
	if span == 0 {
		return scaler{minX: minX, minY: minY, factor: 1}
	}
	return scaler{minX: minX, minY: minY, factor: extent / float64(span)}
}

func (s scaler) scale(p geom.Point) (float64, float64) {
	return float64(p.X-s.minX) * s.factor, float64(p.Y-s.minY) * s.factor
}

// RenderSVG lays out a DOT graph with neato, keeping pinned positions, and
// renders it to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
