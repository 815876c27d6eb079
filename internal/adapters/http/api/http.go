// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/octofit/tracker/internal/domain/catalog"
	"github.com/octofit/tracker/internal/origin"
	"github.com/octofit/tracker/pkg/logger"
)

const defaultMaxBodyBytes = 1 << 20

// Route is one entry of the route table. An empty Method accepts any method.
type Route struct {
	Method  string
	Path    string
	Label   string
	Handler http.HandlerFunc

	// CrossOriginExempt skips http.CrossOriginProtection for this route.
	CrossOriginExempt bool
}

// Pattern returns the ServeMux pattern matching exactly Path.
func (rt Route) Pattern() string {
	p := rt.Path
	if strings.HasSuffix(p, "/") {
		p += "{$}"
	}
	if rt.Method == "" {
		return p
	}
	return rt.Method + " " + p
}

// Server wires HTTP routes for the tracker API.
type Server struct {
	origin   origin.Resolver
	catalog  *catalog.Catalog
	maxBody  int64
	log      logger.Logger
	health   *HealthHandler
	csrf     *http.CrossOriginProtection
	resource []resource
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithMaxBodyBytes caps the body read on write routes.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// WithLogger sets the logger used for access and payload logs.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// NewServer creates a new API server. resolver supplies the base URL for
// every response and cat the record tables behind the read routes.
func NewServer(resolver origin.Resolver, cat *catalog.Catalog, opts ...Option) *Server {
	if resolver == nil {
		resolver = origin.NewEnv()
	}
	if cat == nil {
		cat = catalog.New(catalog.Fixtures{})
	}
	s := &Server{
		origin:  resolver,
		catalog: cat,
		maxBody: defaultMaxBodyBytes,
		log:     logger.Nop(),
		health:  NewHealthHandler(),
		csrf:    http.NewCrossOriginProtection(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resource = s.resources()
	return s
}

// Routes returns the route table in registration order.
func (s *Server) Routes() []Route {
	routes := []Route{
		{Path: "/", Label: "root", Handler: s.handleRoot},
		{Method: http.MethodGet, Path: "/healthz", Label: "healthz", Handler: s.health.HandleHealth},
	}
	for _, res := range s.resource {
		routes = append(routes, Route{
			Method:            http.MethodGet,
			Path:              res.path(),
			Label:             res.name,
			Handler:           s.handleList(res),
			CrossOriginExempt: true,
		})
		if res.writable {
			routes = append(routes, Route{
				Method:            http.MethodPost,
				Path:              res.path(),
				Label:             res.name,
				Handler:           s.handleCreate(res),
				CrossOriginExempt: true,
			})
		}
	}
	return routes
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	for _, rt := range s.Routes() {
		var h http.Handler = MetricsMiddleware(rt.Handler, rt.Label)
		if !rt.CrossOriginExempt {
			h = s.csrf.Handler(h)
		}
		mux.Handle(rt.Pattern(), h)
	}
}

// Handler wraps the whole mux so that unmatched routes and router-level
// rejections also get a request id and an access log line.
func (s *Server) Handler(mux http.Handler) http.Handler {
	return RequestIDMiddleware(AccessLogMiddleware(mux, s.log))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
