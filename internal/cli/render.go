package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/fibernet/pkg/errors"
	"github.com/matzehuels/fibernet/pkg/geom"
	fio "github.com/matzehuels/fibernet/pkg/io"
	"github.com/matzehuels/fibernet/pkg/render/chart"
	"github.com/matzehuels/fibernet/pkg/render/nodelink"
	"github.com/matzehuels/fibernet/pkg/site"
)

const (
	renderDOT = "dot"
	renderSVG = "svg"
	renderPNG = "png"
	renderPDF = "pdf"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	site    int      // 1-based site number
	faulty  string   // "site:probe" to remove before drawing
	formats []string // output formats: "dot", "svg", "png", "pdf"
	output  string   // output base path (default: <input>-site<N>)
	lengths bool     // label edges with cable lengths
	labels  bool     // number probes in chart output
	chart   bool     // draw svg with gonum/plot instead of Graphviz
}

// renderCommand creates the render command, which draws one site's cable
// tree. DOT and SVG come from Graphviz with probes pinned at their
// coordinates; PNG and PDF are plotted with gonum/plot, as is SVG with
// --chart.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{site: 1}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw the cable tree of one site",
		Example: `  fibernet render sites.txt --site 2
  fibernet render sites.txt --site 2 --faulty 2:2 -f svg,png
  fibernet render sites.txt --site 3 -f svg --chart`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.site, "site", "s", 1, "site number to draw")
	cmd.Flags().StringVar(&opts.faulty, "faulty", "", "remove probe site:probe before drawing")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", renderSVG, "output formats, comma-separated: dot, svg, png, pdf")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path")
	cmd.Flags().BoolVar(&opts.lengths, "lengths", false, "label edges with cable lengths")
	cmd.Flags().BoolVar(&opts.labels, "labels", true, "number probes in chart output")
	cmd.Flags().BoolVar(&opts.chart, "chart", false, "draw svg as a chart instead of a Graphviz diagram")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	sites, err := c.readSites(ctx, path)
	if err != nil {
		return err
	}
	s, err := sites.Site(opts.site - 1)
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeOutOfRange, err, "site %d", opts.site)
	}

	var removed []geom.Point
	if opts.faulty != "" {
		spec, err := ferrors.ValidateFaultySpec(opts.faulty)
		if err != nil {
			return err
		}
		if spec.Site != opts.site {
			return ferrors.New(ferrors.ErrCodeInvalidInput, "faulty probe %d:%d is not in site %d", spec.Site, spec.Probe, opts.site)
		}
		_, probeIdx := spec.Indices()
		if probeIdx >= 0 && probeIdx < s.ProbeCount() {
			removed = append(removed, s.Probe(probeIdx).Point)
		}
		if err := s.RemoveProbe(probeIdx); err != nil {
			return ferrors.Classify(err)
		}
	}

	res, err := s.Build()
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeEmptySite, err, "site %d", opts.site)
	}
	logger.Debug("built site", "site", opts.site, "probes", res.Probes, "cable", res.Rounded())

	base := opts.output
	if base == "" {
		base = fmt.Sprintf("%s-site%d", strings.TrimSuffix(path, filepath.Ext(path)), opts.site)
	}
	base = basePath(base, opts.formats)

	prog := newProgress(logger)
	var written []string
	for _, format := range opts.formats {
		out := base + "." + format
		if err := writeRender(ctx, out, format, s, res, removed, opts); err != nil {
			return err
		}
		written = append(written, out)
	}
	prog.done(fmt.Sprintf("Rendered site %d", opts.site))

	printSuccess(c.Err, "Site %d: %s cable", opts.site, StyleNumber.Render(fmt.Sprint(res.Rounded())))
	for _, out := range written {
		printFile(c.Err, out)
	}
	return nil
}

func writeRender(ctx context.Context, path, format string, s *site.Site, res site.Result, removed []geom.Point, opts renderOpts) error {
	err := fio.WriteFile(path, func(w io.Writer) error {
		if format == renderDOT || (format == renderSVG && !opts.chart) {
			dot := nodelink.ToDOT(s.Points(), res, nodelink.Options{Lengths: opts.lengths, Removed: removed})
			if format == renderDOT {
				_, err := io.WriteString(w, dot)
				return err
			}
			svg, err := nodelink.RenderSVG(ctx, dot)
			if err != nil {
				return err
			}
			_, err = w.Write(svg)
			return err
		}
		switch format {
		case renderSVG, renderPNG, renderPDF:
			return chart.Write(w, s.Points(), res, format, chart.Options{
				Title:   fmt.Sprintf("site %d: %d", opts.site, res.Rounded()),
				Labels:  opts.labels,
				Removed: removed,
			})
		default:
			return ferrors.New(ferrors.ErrCodeInvalidFormat, "unsupported format %q", format)
		}
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	return nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{renderSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if err := ferrors.ValidateFormat(f, renderDOT, renderSVG, renderPNG, renderPDF); err != nil {
			return err
		}
	}
	return nil
}

// basePath strips a known format extension from output, so that
// "-o tree.svg" writes tree.svg rather than tree.svg.svg.
func basePath(output string, formats []string) string {
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, f := range formats {
		if ext == f {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}
