// Package pipeline runs spanning-tree builds over a collection of sites.
//
// This package implements the build → report flow shared by the CLI and the
// HTTP API. By centralizing it, both entry points log, verify, and emit hooks
// the same way.
//
// # Architecture
//
// A [Runner] operates on a caller-owned [site.Collection]:
//
//  1. BuildAll: build every site in input order, one [Result] per site
//  2. RebuildOne: rebuild a single site after it changed
//  3. RemoveFaultyProbe: drop one probe from one site, then rebuild only it
//
// Sites never share state and are processed sequentially. A failure in one
// site (for example an empty probe list) is recorded on that site's Result
// and does not stop the others.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	results, err := runner.BuildAll(ctx, sites, pipeline.Options{})
//	for _, r := range results {
//	    fmt.Println(r.Rounded)
//	}
//
//	// Probe 2 of site 1 (0-based: 0, 1) failed
//	res, err := runner.RemoveFaultyProbe(ctx, sites, 0, 1, pipeline.Options{})
package pipeline

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fibernet/pkg/mst"
	"github.com/matzehuels/fibernet/pkg/site"
)

// VerifyTolerance is the largest difference between the Prim and Kruskal
// totals accepted by Options.Verify.
const VerifyTolerance = 1e-6

// ErrVerifyMismatch is returned when the cross-check solver disagrees with the
// primary one.
var ErrVerifyMismatch = errors.New("pipeline: prim and kruskal totals differ")

// =============================================================================
// Options - Build Configuration
// =============================================================================

// Options configures a build run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Method selects the tree algorithm (default: prim).
	Method mst.Method `json:"method,omitempty"`

	// Verify cross-checks every Prim total against Kruskal.
	Verify bool `json:"verify,omitempty"`

	// Logger overrides the Runner's logger for this run (not serialized).
	Logger *log.Logger `json:"-"`
}

// Validate checks the method and applies the default.
func (o *Options) Validate() error {
	m, err := mst.ParseMethod(string(o.Method))
	if err != nil {
		return err
	}
	o.Method = m
	return nil
}

// =============================================================================
// Result - Per-Site Outcome
// =============================================================================

// Result is the outcome of building one site.
type Result struct {
	// Site is the 0-based index of the site in its collection.
	Site int

	// Probes is the number of probes built over.
	Probes int

	// Total is the continuous tree length in meters.
	Total float64

	// Rounded is Total rounded up: the reported cable length.
	Rounded int

	// Root is the probe the tree was grown from, or site.NoParent for methods
	// without a root.
	Root int

	// Edges lists the tree's cable runs.
	Edges []site.Edge

	// Method is the algorithm that produced the tree.
	Method mst.Method

	// Duration is the wall time spent building.
	Duration time.Duration

	// Err is set when the site could not be built. The other fields are zero.
	Err error
}

// OK reports whether the site was built successfully.
func (r Result) OK() bool {
	return r.Err == nil
}
