package server

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	ginhandler "user-account-service/internal/adapter/gin/handler"
	"user-account-service/internal/config"
	"user-account-service/internal/docs"
)

// Server struct holds the HTTP server and its dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, routes []docs.RouteDescriptor, docsHandler *ginhandler.DocsHandler) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		HTTP:   SetupGinServer(routes, docsHandler, cfg.App.Addr(), l),
	}
}

// Start starts the HTTP server. A failure to bind the listen address is
// returned immediately and is fatal to the process.
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
	if err := s.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}
