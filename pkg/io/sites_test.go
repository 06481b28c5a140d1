package io

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/fibernet/pkg/geom"
)

func TestReadSites(t *testing.T) {
	input := "0,0 0,3 4,0\n\n7,7\n  8028,5930\t1835,5145  \n"

	c, err := ParseSites(input)
	if err != nil {
		t.Fatalf("ParseSites() error = %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	want := [][]geom.Point{
		{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 4, Y: 0}},
		{{X: 7, Y: 7}},
		{{X: 8028, Y: 5930}, {X: 1835, Y: 5145}},
	}
	for i, pts := range want {
		s, _ := c.Site(i)
		got := s.Points()
		if len(got) != len(pts) {
			t.Errorf("site %d: %d probes, want %d", i, len(got), len(pts))
			continue
		}
		for j := range pts {
			if got[j] != pts[j] {
				t.Errorf("site %d probe %d = %v, want %v", i, j, got[j], pts[j])
			}
		}
	}
}

func TestReadSitesPermissive(t *testing.T) {
	input := "1,1 2,2 3;3 4,4\n5,5 6,6\nx,1\n"

	c, err := ParseSites(input)
	if err == nil {
		t.Fatal("ParseSites() should report malformed tokens")
	}
	if c == nil || c.Len() != 3 {
		t.Fatalf("collection = %v, want 3 sites", c)
	}

	counts := []int{2, 2, 0}
	for i, n := range counts {
		s, _ := c.Site(i)
		if s.ProbeCount() != n {
			t.Errorf("site %d: ProbeCount() = %d, want %d", i, s.ProbeCount(), n)
		}
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	if pe.Line != 1 || pe.Column != 9 || pe.Token != "3;3" {
		t.Errorf("first ParseError = %+v, want line 1 column 9 token 3;3", pe)
	}
	if !errors.Is(err, ErrMissingComma) {
		t.Errorf("error should wrap ErrMissingComma: %v", err)
	}
	if !errors.Is(err, ErrBadCoordinate) {
		t.Errorf("error should wrap ErrBadCoordinate: %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error should mention line 3: %v", err)
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		tok     string
		want    geom.Point
		wantErr error
	}{
		{"500,8000", geom.Point{X: 500, Y: 8000}, nil},
		{"0,0", geom.Point{}, nil},
		{"-1,2", geom.Point{X: -1, Y: 2}, nil},
		{"12", geom.Point{}, ErrMissingComma},
		{",5", geom.Point{}, ErrBadCoordinate},
		{"5,", geom.Point{}, ErrBadCoordinate},
		{"1.5,2", geom.Point{}, ErrBadCoordinate},
		{"1,2,3", geom.Point{}, ErrBadCoordinate},
	}

	for _, tt := range tests {
		got, err := parsePoint(tt.tok)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("parsePoint(%q) error = %v, want %v", tt.tok, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePoint(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func TestImportSites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.txt")
	if err := os.WriteFile(path, []byte("9013,3937 7791,872 2417,3183\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := ImportSites(path)
	if err != nil {
		t.Fatalf("ImportSites() error = %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestImportSitesMissing(t *testing.T) {
	_, err := ImportSites(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ImportSites() error = %v, want os.ErrNotExist", err)
	}
	if err != nil && !strings.HasPrefix(err.Error(), "open ") {
		t.Errorf("error should be wrapped with the path: %v", err)
	}
}
