package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fibernet/pkg/mst"
	"github.com/matzehuels/fibernet/pkg/observability"
	"github.com/matzehuels/fibernet/pkg/site"
)

// Runner encapsulates build execution for the CLI and the API.
//
// The Runner is stateless except for the logger - it doesn't store sites or
// results. The collection passed in is owned by the caller and is mutated
// only by RemoveFaultyProbe.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// BuildAll builds every site of c in input order and returns one Result per
// site. A site that fails keeps its error on its Result; the joined errors of
// all failed sites are returned alongside the complete result slice. Context
// cancellation stops the run and returns the results built so far.
func (r *Runner) BuildAll(ctx context.Context, c *site.Collection, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	results := make([]Result, 0, c.Len())
	var errs []error
	for i, s := range c.Sites() {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := r.build(ctx, i, s, opts)
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("site %d: %w", i+1, res.Err))
		}
		results = append(results, res)
	}

	r.logger(opts).Info("built sites",
		"sites", len(results),
		"failed", len(errs),
		"duration", time.Since(start))

	return results, errors.Join(errs...)
}

// RebuildOne builds only site i (0-based) of c.
func (r *Runner) RebuildOne(ctx context.Context, c *site.Collection, i int, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	s, err := c.Site(i)
	if err != nil {
		return Result{}, err
	}
	res := r.build(ctx, i, s, opts)
	if res.Err != nil {
		return res, fmt.Errorf("site %d: %w", i+1, res.Err)
	}
	return res, nil
}

// RemoveFaultyProbe drops probe probeIdx from site siteIdx (both 0-based) and
// rebuilds that site only. Out-of-range indices return an error before
// anything is modified.
func (r *Runner) RemoveFaultyProbe(ctx context.Context, c *site.Collection, siteIdx, probeIdx int, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid options: %w", err)
	}
	s, err := c.Site(siteIdx)
	if err != nil {
		return Result{}, err
	}
	if err := s.RemoveProbe(probeIdx); err != nil {
		return Result{}, fmt.Errorf("site %d: %w", siteIdx+1, err)
	}
	observability.Build().OnProbeRemoved(ctx, siteIdx, probeIdx)
	r.logger(opts).Debug("removed faulty probe",
		"site", siteIdx+1,
		"probe", probeIdx+1,
		"remaining", s.ProbeCount())

	return r.RebuildOne(ctx, c, siteIdx, opts)
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// build runs the configured method on one site and wraps the outcome.
func (r *Runner) build(ctx context.Context, idx int, s *site.Site, opts Options) Result {
	hooks := observability.Build()
	hooks.OnBuildStart(ctx, idx, s.ProbeCount())

	start := time.Now()
	res := Result{Site: idx, Method: opts.Method}
	var err error
	switch opts.Method {
	case mst.MethodKruskal:
		err = buildKruskal(s, &res)
	default:
		err = buildPrim(s, &res)
		if err == nil && opts.Verify {
			err = verify(s, res.Total)
		}
	}
	res.Duration = time.Since(start)

	hooks.OnBuildComplete(ctx, idx, res.Total, res.Duration, err)
	if err != nil {
		r.logger(opts).Warn("site build failed", "site", idx+1, "probes", s.ProbeCount(), "err", err)
		return Result{Site: idx, Method: opts.Method, Duration: res.Duration, Err: err}
	}

	r.logger(opts).Debug("built site",
		"site", idx+1,
		"probes", res.Probes,
		"total", res.Total,
		"method", res.Method,
		"duration", res.Duration)
	return res
}

func buildPrim(s *site.Site, res *Result) error {
	tree, err := s.Build()
	if err != nil {
		return err
	}
	res.Probes = tree.Probes
	res.Total = tree.Total
	res.Rounded = tree.Rounded()
	res.Root = tree.Root
	res.Edges = tree.Edges()
	return nil
}

func buildKruskal(s *site.Site, res *Result) error {
	edges, total, err := mst.Kruskal(s.Points())
	if errors.Is(err, mst.ErrEmpty) {
		return site.ErrNoProbes
	}
	if err != nil {
		return err
	}
	res.Probes = s.ProbeCount()
	res.Total = total
	res.Rounded = int(math.Ceil(total))
	res.Root = site.NoParent
	res.Edges = make([]site.Edge, len(edges))
	for i, e := range edges {
		res.Edges[i] = site.Edge{From: e.U, To: e.V, Length: e.Length}
	}
	return nil
}

// verify recomputes the total with Kruskal and compares it to want.
func verify(s *site.Site, want float64) error {
	_, got, err := mst.Kruskal(s.Points())
	if err != nil {
		return err
	}
	if math.Abs(got-want) > VerifyTolerance {
		return fmt.Errorf("%w: prim %.6f, kruskal %.6f", ErrVerifyMismatch, want, got)
	}
	return nil
}
