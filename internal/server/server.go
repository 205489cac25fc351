// Package server exposes the resolver over HTTP for the rendering layer.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ppiankov/capsule/internal/logging"
	"github.com/ppiankov/capsule/internal/resolve"
	"github.com/ppiankov/capsule/internal/worker"
)

// Config represents server configuration
type Config struct {
	Addr         string
	Version      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns default server configuration
func DefaultConfig(addr string) Config {
	return Config{
		Addr:         addr,
		Version:      "dev",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Server serves resolutions and capsules
type Server struct {
	cfg      Config
	resolver *resolve.Resolver
	batch    *worker.BatchProcessor
	logger   logging.Logger
	router   *gin.Engine
}

// New creates a server and its router
func New(cfg Config, resolver *resolve.Resolver, batch *worker.BatchProcessor, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{cfg: cfg, resolver: resolver, batch: batch, logger: logger}
	s.router = s.setupRouter()
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()

	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(s.logger))
	router.Use(RecoveryMiddleware(s.logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"version":    s.cfg.Version,
			"categories": len(s.resolver.Registry().Categories()),
		})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *gin.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	v1 := router.Group("/v1")
	v1.GET("/resolve", s.handleResolve)
	v1.GET("/capsule", s.handleCapsule)
	v1.GET("/categories", s.handleCategories)

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithFields(logging.Fields{
			"addr":    s.cfg.Addr,
			"version": s.cfg.Version,
		}).Info("Starting HTTP server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}
