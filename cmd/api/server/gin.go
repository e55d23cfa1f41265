package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	ginhandler "user-account-service/internal/adapter/gin/handler"
	ginrouter "user-account-service/internal/adapter/gin/router"
	"user-account-service/internal/docs"
)

// SetupGinServer creates and configures the Gin HTTP server
func SetupGinServer(
	routes []docs.RouteDescriptor,
	docsHandler *ginhandler.DocsHandler,
	addr string,
	l *zap.Logger,
) *http.Server {
	router := ginrouter.SetupRouter(routes, docsHandler, l)

	l.Info("HTTP API configured", zap.String("address", addr))
	l.Info("API reference available", zap.String("url", "http://"+addr+"/api"))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
