// Package pkg provides the core libraries for fibernet.
//
// # Overview
//
// Fibernet computes how much fiber cable is needed to connect every probe of
// a site: the weight of the Euclidean minimum spanning tree over the probes,
// rounded up to a whole unit. Sites are independent; one faulty probe can be
// removed from a site and that site rebuilt on its own.
//
// # Architecture
//
// The typical data flow:
//
//	sites file (one site per line, "x,y" pairs)
//	         ↓
//	    [io] package (parse into a site.Collection)
//	         ↓
//	    [pipeline] package (build every site, optionally remove a probe)
//	         ↓
//	    [site] package (Prim over the distance matrix)
//	         ↓
//	    totals / JSON report / DOT, SVG, PNG drawings
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/fibernet/pkg/io"
//	    "github.com/matzehuels/fibernet/pkg/pipeline"
//	)
//
//	sites, err := io.ImportSites("sites.txt")
//	runner := pipeline.NewRunner(nil)
//	results, err := runner.BuildAll(ctx, sites, pipeline.Options{})
//	io.WriteTotals(os.Stdout, results)
//
//	// Probe 2 of site 2 (1-based) failed
//	res, err := runner.RemoveFaultyProbe(ctx, sites, 1, 1, pipeline.Options{})
//
// # Main Packages
//
// [geom] - Integer points and Euclidean distance.
//
// [site] - Probe storage, Prim's algorithm, probe removal, and the ordered
// site collection.
//
// [mst] - Kruskal's algorithm over a point set, used as an alternate method
// and to cross-check Prim.
//
// [pipeline] - Runner shared by the CLI and the HTTP API.
//
// [io] - Sites file parser and report writers.
//
// [render/nodelink] - Graphviz drawings with probes pinned at their
// coordinates. [render/chart] - gonum/plot scatter charts.
//
// [api] - chi HTTP server.
//
// [errors] - Structured error codes shared by the CLI and the API.
//
// [observability] - Build hooks for metrics and tracing.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test -run Example ./...  # Examples only
//	go test -bench . ./pkg/site # Prim benchmarks
package pkg
