package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/fibernet/pkg/buildinfo"
	ferrors "github.com/matzehuels/fibernet/pkg/errors"
	"github.com/matzehuels/fibernet/pkg/mst"
	"github.com/matzehuels/fibernet/pkg/pipeline"
)

// MaxBodyBytes limits the size of a request body.
const MaxBodyBytes = 4 << 20

// Default request limits. A site of n probes holds an n×n distance matrix
// while it builds, so the probe limits bound memory per request.
const (
	DefaultMaxSites       = 1000
	DefaultMaxProbes      = 1000
	DefaultMaxTotalProbes = 10000
)

// Options configures a Server. Zero values take the defaults.
type Options struct {
	// Method is used when a request does not name one.
	Method string

	// MaxSites limits the number of sites in one request.
	MaxSites int

	// MaxProbes limits the probes in any single site.
	MaxProbes int

	// MaxTotalProbes limits the probes across all sites of one request.
	MaxTotalProbes int
}

func (o Options) withDefaults() Options {
	if o.Method == "" {
		o.Method = string(mst.DefaultMethod)
	}
	if o.MaxSites <= 0 {
		o.MaxSites = DefaultMaxSites
	}
	if o.MaxProbes <= 0 {
		o.MaxProbes = DefaultMaxProbes
	}
	if o.MaxTotalProbes <= 0 {
		o.MaxTotalProbes = DefaultMaxTotalProbes
	}
	return o
}

// Server handles HTTP requests with a shared Runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	opts   Options
}

// NewServer returns a server that builds with runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger, opts: opts.withDefaults()}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/health", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/mst", s.buildMST)
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{Status: "ok", Info: buildinfo.Get()})
}

// envelope is the body of every response.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    ferrors.Code `json:"code"`
	Message string       `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, err error) {
	err = ferrors.Classify(err)
	respondErrorStatus(w, ferrors.HTTPStatus(ferrors.GetCode(err)), err)
}

func respondErrorStatus(w http.ResponseWriter, status int, err error) {
	err = ferrors.Classify(err)
	writeEnvelope(w, status, envelope{
		Error: &errorBody{Code: ferrors.GetCode(err), Message: ferrors.UserMessage(err)},
	})
}

func writeEnvelope(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// requestLogger logs every request once it has been served.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", chimiddleware.GetReqID(r.Context()))
		})
	}
}
