// Package http exposes the compiler over a JSON HTTP API.
//
// Requests to the /v1 routes are validated against the embedded OpenAPI
// document before they reach a handler.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/najia/pkg/batch"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/hexagram"
)

//go:embed openapi.yaml
var rawSpec []byte

// Engine is the part of the najia engine the API serves.
type Engine interface {
	Compile(ctx context.Context, req domain.Request) (domain.Hexagram, error)
	Describe(p domain.Pattern) (hexagram.Entry, bool)
	Lookup(name string) (hexagram.Entry, bool)
	Table() []hexagram.Entry
}

// BatchRequest is the body of POST /v1/batch.
type BatchRequest struct {
	Requests   []domain.Request `json:"requests"`
	Sequential bool             `json:"sequential,omitempty"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Server holds the handlers of the API.
type Server struct {
	Engine    Engine
	Processor *batch.Processor
	Version   string

	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithProcessor sets the processor behind POST /v1/batch.
func WithProcessor(p *batch.Processor) Option {
	return func(s *Server) {
		s.Processor = p
	}
}

// WithGatherer sets the registry served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithVersion sets the version reported by /healthz.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.Version = v
	}
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi: %w", err)
	}
	return doc, nil
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) (http.Handler, error) {
	server := &Server{
		Engine:   engine,
		gatherer: prometheus.DefaultGatherer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(server)
	}
	if server.Processor == nil {
		server.Processor = batch.NewProcessor(engine, batch.WithLogger(server.logger))
	}

	doc, err := LoadSpec()
	if err != nil {
		return nil, err
	}
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi router: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(server.logRequests)

	r.Get("/healthz", server.GetHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(validateRequests(router))
		r.Post("/compile", server.Compile)
		r.Post("/batch", server.Batch)
		r.Get("/hexagrams", server.ListHexagrams)
		r.Get("/hexagrams/{pattern}", server.GetHexagram)
	})

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start))
	})
}

// validateRequests rejects requests that do not match the OpenAPI document.
// Routes the document does not describe pass through untouched.
func validateRequests(router routers.Router) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, params, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: params,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Compile handles POST /v1/compile.
func (s *Server) Compile(w http.ResponseWriter, r *http.Request) {
	var req domain.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("compile: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	h, err := s.Engine.Compile(r.Context(), req)
	if err != nil {
		s.logger.Warn("compile failed", "error", err)
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

// Batch handles POST /v1/batch.
func (s *Server) Batch(w http.ResponseWriter, r *http.Request) {
	var body BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("batch: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	process := s.Processor.Process
	if body.Sequential {
		process = s.Processor.ProcessSequential
	}
	res, err := process(r.Context(), body.Requests)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, batch.ErrEmptyBatch) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ListHexagrams handles GET /v1/hexagrams, optionally filtered by ?palace=.
func (s *Server) ListHexagrams(w http.ResponseWriter, r *http.Request) {
	var palace string
	if err := runtime.BindQueryParameter("form", true, false, "palace", r.URL.Query(), &palace); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if palace != "" && !domain.Palace(palace).Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown palace %q", palace))
		return
	}

	table := s.Engine.Table()
	out := make([]hexagram.Entry, 0, len(table))
	for _, e := range table {
		if palace == "" || e.Palace == domain.Palace(palace) {
			out = append(out, e)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// GetHexagram handles GET /v1/hexagrams/{pattern}. The parameter may also
// be a hexagram name.
func (s *Server) GetHexagram(w http.ResponseWriter, r *http.Request) {
	var key string
	err := runtime.BindStyledParameterWithOptions("simple", "pattern", chi.URLParam(r, "pattern"), &key,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entry, ok := s.Engine.Describe(domain.Pattern(key))
	if !ok {
		entry, ok = s.Engine.Lookup(key)
	}
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown hexagram %q", key))
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: s.Version})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidLines), errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
