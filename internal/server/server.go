// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
)

// Config holds server configuration.
type Config struct {
	Addr      string
	Pipeline  *pipeline.Pipeline
	Logger    *zap.Logger
	RateLimit *ratelimit.Config // nil uses environment defaults
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	pipeline   *pipeline.Pipeline
	log        *zap.Logger
	limiter    *ratelimit.Limiter
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	if cfg.Pipeline == nil {
		return nil, fmt.Errorf("server requires a pipeline")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		pipeline: cfg.Pipeline,
		log:      log,
		limiter:  ratelimit.NewLimiter(cfg.RateLimit),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyzeFile)
	mux.HandleFunc("POST /analyze/text", s.handleAnalyzeText)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /health", s.handleHealth)

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.withMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	return s, nil
}

// Handler exposes the fully wrapped handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		s.log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
