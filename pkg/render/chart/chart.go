// Package chart draws a site's spanning tree as a scatter plot with
// gonum/plot, for quick raster previews.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/fibernet/pkg/geom"
	"github.com/matzehuels/fibernet/pkg/site"
)

// Supported output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

var (
	cableColor   = color.RGBA{R: 0x1f, G: 0x6f, B: 0xeb, A: 0xff}
	probeColor   = color.RGBA{R: 0x24, G: 0x29, B: 0x2f, A: 0xff}
	rootColor    = color.RGBA{R: 0x1a, G: 0x7f, B: 0x37, A: 0xff}
	removedColor = color.RGBA{R: 0xcf, G: 0x22, B: 0x2e, A: 0xff}
)

// Options configures the chart.
type Options struct {
	Title   string
	Width   vg.Length // zero means 6in
	Height  vg.Length // zero means 6in
	Labels  bool      // number the probes
	Removed []geom.Point
}

// New builds the plot for one site. pts are the probe coordinates the tree
// in res was computed over.
func New(pts []geom.Point, res site.Result, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for _, e := range res.Edges() {
		a, b := pts[e.From], pts[e.To]
		l, err := plotter.NewLine(plotter.XYs{
			{X: float64(a.X), Y: float64(a.Y)},
			{X: float64(b.X), Y: float64(b.Y)},
		})
		if err != nil {
			return nil, fmt.Errorf("edge %d-%d: %w", e.From, e.To, err)
		}
		l.Color = cableColor
		l.Width = vg.Points(1.5)
		p.Add(l)
	}

	if len(pts) > 0 {
		probes, err := plotter.NewScatter(toXYs(pts))
		if err != nil {
			return nil, fmt.Errorf("probes: %w", err)
		}
		probes.GlyphStyle.Color = probeColor
		probes.GlyphStyle.Radius = vg.Points(3)
		probes.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(probes)
		p.Legend.Add("probe", probes)
	}

	if res.Root >= 0 && res.Root < len(pts) {
		root, err := plotter.NewScatter(toXYs(pts[res.Root : res.Root+1]))
		if err != nil {
			return nil, fmt.Errorf("root: %w", err)
		}
		root.GlyphStyle.Color = rootColor
		root.GlyphStyle.Radius = vg.Points(5)
		root.GlyphStyle.Shape = draw.RingGlyph{}
		p.Add(root)
		p.Legend.Add("root", root)
	}

	if len(opts.Removed) > 0 {
		removed, err := plotter.NewScatter(toXYs(opts.Removed))
		if err != nil {
			return nil, fmt.Errorf("removed: %w", err)
		}
		removed.GlyphStyle.Color = removedColor
		removed.GlyphStyle.Radius = vg.Points(4)
		removed.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(removed)
		p.Legend.Add("removed", removed)
	}

	if opts.Labels && len(pts) > 0 {
		names := make([]string, len(pts))
		for i := range pts {
			names[i] = strconv.Itoa(i + 1)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: toXYs(pts), Labels: names})
		if err != nil {
			return nil, fmt.Errorf("labels: %w", err)
		}
		labels.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}
		p.Add(labels)
	}

	return p, nil
}

// Write renders the chart in the given format ("png", "svg" or "pdf").
func Write(w io.Writer, pts []geom.Point, res site.Result, format string, opts Options) error {
	p, err := New(pts, res, opts)
	if err != nil {
		return err
	}
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 6 * vg.Inch
	}
	if height == 0 {
		height = 6 * vg.Inch
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("%s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

func toXYs(pts []geom.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: float64(pt.X), Y: float64(pt.Y)}
	}
	return xys
}
