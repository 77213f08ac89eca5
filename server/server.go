// Package server exposes the campus walking-route service over HTTP.
//
// Endpoints:
//
//	GET /healthz                          liveness and map size
//	GET /v1/locations                     all location names
//	GET /v1/route?start=&end=[&via=]      quickest walk
//	GET /v1/reachable?from=[&max_hops=]   locations reachable on foot
//	GET /metrics                          Prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/campuswalk/campus"
	"github.com/katalvlaran/campuswalk/logging"
	"github.com/katalvlaran/campuswalk/metrics"
)

// ShutdownTimeout bounds graceful shutdown in Run.
const ShutdownTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics instruments requests and serves /metrics from reg.
func WithMetrics(reg *metrics.Registry) Option {
	return func(s *Server) { s.metrics = reg }
}

// WithCORSOrigins sets the allowed CORS origins. "*" allows all.
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// Server wires the HTTP routes to a campus.Service.
type Server struct {
	svc     *campus.Service
	log     *slog.Logger
	metrics *metrics.Registry
	origins []string
	engine  *gin.Engine
}

// New builds the gin engine for svc.
func New(svc *campus.Service, opts ...Option) *Server {
	s := &Server{
		svc:     svc,
		log:     logging.Discard(),
		origins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = s.routes()

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.log))
	if s.metrics != nil {
		r.Use(instrument(s.metrics))
	}
	r.Use(cors.New(s.corsConfig()))

	r.GET("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := r.Group("/v1")
	v1.GET("/locations", s.handleLocations)
	v1.GET("/route", s.handleRoute)
	v1.GET("/reachable", s.handleReachable)

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	cfg.ExposeHeaders = []string{RequestIDHeader}
	for _, o := range s.origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = s.origins

	return cfg
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
