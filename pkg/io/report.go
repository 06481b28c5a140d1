package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/matzehuels/fibernet/pkg/mst"
	"github.com/matzehuels/fibernet/pkg/pipeline"
	"github.com/matzehuels/fibernet/pkg/site"
)

// Report is the JSON form of one run over a collection of sites.
type Report struct {
	RunID  string       `json:"run_id"`
	Method mst.Method   `json:"method"`
	Sites  []SiteReport `json:"sites"`

	// Rebuilt is the faulty site after one probe was removed, if any.
	Rebuilt *SiteReport `json:"rebuilt,omitempty"`
}

// SiteReport is the JSON form of a single site's result.
type SiteReport struct {
	Site    int         `json:"site"`
	Probes  int         `json:"probes"`
	Total   float64     `json:"total"`
	Rounded int         `json:"rounded"`
	Root    int         `json:"root"`
	Edges   []site.Edge `json:"edges"`
	Error   string      `json:"error,omitempty"`
}

// NewReport converts runner results into a report with a fresh run ID.
func NewReport(method mst.Method, results []pipeline.Result) Report {
	r := Report{
		RunID:  uuid.NewString(),
		Method: method,
		Sites:  make([]SiteReport, len(results)),
	}
	for i, res := range results {
		r.Sites[i] = NewSiteReport(res)
	}
	return r
}

// NewSiteReport converts a single runner result.
func NewSiteReport(res pipeline.Result) SiteReport {
	sr := SiteReport{
		Site:    res.Site + 1,
		Probes:  res.Probes,
		Total:   res.Total,
		Rounded: res.Rounded,
		Root:    res.Root,
		Edges:   res.Edges,
	}
	if sr.Edges == nil {
		sr.Edges = []site.Edge{}
	}
	if res.Err != nil {
		sr.Error = res.Err.Error()
	}
	return sr
}

// WriteTotals writes one rounded total per line, in result order.
// Failed sites are written as "error: <message>" so that line numbers keep
// matching site numbers.
func WriteTotals(w io.Writer, results []pipeline.Result) error {
	for _, res := range results {
		var err error
		if res.Err != nil {
			_, err = fmt.Fprintf(w, "error: %v\n", res.Err)
		} else {
			_, err = fmt.Fprintf(w, "%d\n", res.Rounded)
		}
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes r to a JSON file at path.
func ExportJSON(r Report, path string) error {
	return WriteFile(path, func(w io.Writer) error {
		return WriteJSON(w, r)
	})
}
