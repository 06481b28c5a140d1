package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ferrors "github.com/matzehuels/fibernet/pkg/errors"
	"github.com/matzehuels/fibernet/pkg/geom"
	"github.com/matzehuels/fibernet/pkg/site"
)

func TestRenderDOTAndPNG(t *testing.T) {
	c, _, errOut := testCLI(t, "")
	input := writeInput(t, referenceInput)
	base := filepath.Join(t.TempDir(), "tree")

	err := execute(c, "render", input, "--site", "2", "--faulty", "2:2", "-f", "dot,png", "-o", base+".png", "--lengths")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatalf("dot output: %v", err)
	}
	if strings.Count(string(dot), " -- ") != 3 {
		t.Errorf("4 probes should give 3 edges:\n%s", dot)
	}
	if !strings.Contains(string(dot), `tooltip="1835,5145", style=dashed`) {
		t.Errorf("removed probe not marked:\n%s", dot)
	}

	png, err := os.ReadFile(base + ".png")
	if err != nil {
		t.Fatalf("png output: %v", err)
	}
	if !strings.HasPrefix(string(png), "\x89PNG") {
		t.Error("png output is not a PNG")
	}
	if !strings.Contains(errOut.String(), "8868") {
		t.Errorf("summary should report the cable length: %q", errOut.String())
	}
}

func TestRenderChartSVG(t *testing.T) {
	c, _, _ := testCLI(t, "")
	input := writeInput(t, referenceInput)
	base := filepath.Join(t.TempDir(), "chart")

	if err := execute(c, "render", input, "--site", "3", "-f", "svg", "--chart", "-o", base); err != nil {
		t.Fatalf("render error = %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("svg output: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Fatal("svg output is not an SVG")
	}
	if strings.Contains(string(svg), `class="graph"`) {
		t.Error("--chart should not draw with Graphviz")
	}
	if !strings.Contains(string(svg), "15335") {
		t.Error("chart title should carry the cable length")
	}
}

func TestWriteRenderRemovesFailedOutput(t *testing.T) {
	s := site.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4})
	res, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "tree.gif")
	err = writeRender(context.Background(), path, "gif", s, res, nil, renderOpts{site: 1})
	if !ferrors.Is(err, ferrors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want code %s", err, ferrors.ErrCodeInvalidFormat)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("failed render left %s behind: stat error = %v", path, err)
	}
}

func TestRenderErrors(t *testing.T) {
	input := writeInput(t, referenceInput)

	tests := []struct {
		name string
		args []string
		code ferrors.Code
	}{
		{"bad format", []string{"render", input, "-f", "gif"}, ferrors.ErrCodeInvalidFormat},
		{"site out of range", []string{"render", input, "--site", "6"}, ferrors.ErrCodeOutOfRange},
		{"faulty in other site", []string{"render", input, "--site", "1", "--faulty", "2:1"}, ferrors.ErrCodeInvalidInput},
		{"faulty probe out of range", []string{"render", input, "--site", "4", "--faulty", "4:9"}, ferrors.ErrCodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := testCLI(t, "")
			if err := execute(c, tt.args...); !ferrors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	got := parseFormats("SVG, png,,dot")
	want := []string{"svg", "png", "dot"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("parseFormats() = %v, want %v", got, want)
	}
	if got := parseFormats(""); len(got) != 1 || got[0] != renderSVG {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output  string
		formats []string
		want    string
	}{
		{"tree.svg", []string{"svg"}, "tree"},
		{"tree.svg", []string{"png"}, "tree.svg"},
		{"out/tree", []string{"svg", "png"}, "out/tree"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.formats); got != tt.want {
			t.Errorf("basePath(%q, %v) = %q, want %q", tt.output, tt.formats, got, tt.want)
		}
	}
}
