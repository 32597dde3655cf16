// Package httpserver wraps the net/http server lifecycle.
package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vietkitchen/recipes-api/internal/config"
	"github.com/vietkitchen/recipes-api/pkg/logger"
)

// Server owns the underlying http.Server.
type Server struct {
	srv *http.Server
	log *logger.Logger
}

// New builds a server for the given listener configuration and handler.
func New(cfg config.ServerConfig, log *logger.Logger, handler http.Handler) *Server {
	if log == nil {
		log = logger.NewDefault("httpserver")
	}
	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.srv.Addr }

// Start serves until Shutdown is called or the listener fails. It returns
// http.ErrServerClosed after a graceful shutdown.
func (s *Server) Start() error {
	s.log.Infof("HTTP server listening on %s", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
