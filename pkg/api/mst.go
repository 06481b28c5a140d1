package api

import (
	"encoding/json"
	"net/http"

	ferrors "github.com/matzehuels/fibernet/pkg/errors"
	"github.com/matzehuels/fibernet/pkg/geom"
	fio "github.com/matzehuels/fibernet/pkg/io"
	"github.com/matzehuels/fibernet/pkg/pipeline"
	"github.com/matzehuels/fibernet/pkg/site"
)

// MSTRequest is the body of POST /v1/mst. The response data is an
// [fio.Report].
type MSTRequest struct {
	Sites  [][][2]int          `json:"sites"`
	Method string              `json:"method,omitempty"`
	Verify bool                `json:"verify,omitempty"`
	Faulty *ferrors.FaultySpec `json:"faulty,omitempty"`
}

func (s *Server) buildMST(w http.ResponseWriter, r *http.Request) {
	var req MSTRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	if err := s.checkLimits(req.Sites); err != nil {
		respondErrorStatus(w, http.StatusUnprocessableEntity, err)
		return
	}

	if req.Method == "" {
		req.Method = s.opts.Method
	}
	method, err := ferrors.ValidateMethod(req.Method)
	if err != nil {
		respondError(w, err)
		return
	}
	if req.Faulty != nil {
		if err := req.Faulty.Validate(); err != nil {
			respondError(w, err)
			return
		}
	}

	c := collectionFrom(req.Sites)
	opts := pipeline.Options{Method: method, Verify: req.Verify}
	ctx := r.Context()

	// Per-site failures stay on their results.
	results, err := s.runner.BuildAll(ctx, c, opts)
	if ctx.Err() != nil {
		respondError(w, ctx.Err())
		return
	}
	if results == nil && err != nil {
		respondError(w, err)
		return
	}

	resp := fio.NewReport(method, results)
	if req.Faulty != nil {
		siteIdx, probeIdx := req.Faulty.Indices()
		res, err := s.runner.RemoveFaultyProbe(ctx, c, siteIdx, probeIdx, opts)
		if err != nil && res.Err == nil {
			respondError(w, ferrors.Wrap(ferrors.GetCode(ferrors.Classify(err)), err,
				"remove probe %d from site %d", req.Faulty.Probe, req.Faulty.Site))
			return
		}
		rebuilt := fio.NewSiteReport(res)
		resp.Rebuilt = &rebuilt
	}

	respondJSON(w, http.StatusOK, resp)
}

// checkLimits rejects requests whose sites would not fit the server's limits.
func (s *Server) checkLimits(sites [][][2]int) error {
	if len(sites) > s.opts.MaxSites {
		return ferrors.New(ferrors.ErrCodeInvalidInput,
			"request has %d sites, limit is %d", len(sites), s.opts.MaxSites)
	}
	total := 0
	for i, pairs := range sites {
		if len(pairs) > s.opts.MaxProbes {
			return ferrors.New(ferrors.ErrCodeInvalidInput,
				"site %d has %d probes, limit is %d", i+1, len(pairs), s.opts.MaxProbes)
		}
		total += len(pairs)
	}
	if total > s.opts.MaxTotalProbes {
		return ferrors.New(ferrors.ErrCodeInvalidInput,
			"request has %d probes, limit is %d", total, s.opts.MaxTotalProbes)
	}
	return nil
}

func collectionFrom(sites [][][2]int) *site.Collection {
	c := site.NewCollection()
	for _, pairs := range sites {
		pts := make([]geom.Point, len(pairs))
		for i, xy := range pairs {
			pts[i] = geom.Point{X: xy[0], Y: xy[1]}
		}
		c.Add(site.New(pts...))
	}
	return c
}
