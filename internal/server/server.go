// Package server is the HTTP API for folding RNA strands.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tiffanybuu/cs466-project/config"
)

// shutdownTimeout is how long in-flight requests get to finish once the
// server is asked to stop.
const shutdownTimeout = 10 * time.Second

// Server folds the strands sent to it. Every request builds and drops its
// own score matrix, so requests are served concurrently.
type Server struct {
	conf     *config.Config
	validate *validator.Validate
	registry *prometheus.Registry
	metrics  *metrics
	router   *gin.Engine
}

// New builds a Server and its routes.
func New(conf *config.Config) *Server {
	if conf.Server.Mode != "" {
		gin.SetMode(conf.Server.Mode)
	}

	registry := prometheus.NewRegistry()
	s := &Server{
		conf:     conf,
		validate: newValidator(),
		registry: registry,
		metrics:  newMetrics(registry),
		router:   gin.New(),
	}

	s.router.Use(gin.Recovery(), requestID(), logRequests(), s.countRequests(), cors(conf.Server.CORSOrigin))

	s.router.GET("/", s.home)
	s.router.GET("/nussinov", s.fold)
	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return s
}

// Handler is the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.conf.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down", "addr", srv.Addr)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
