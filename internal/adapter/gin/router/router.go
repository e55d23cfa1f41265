package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"user-account-service/internal/adapter/gin/handler"
	"user-account-service/internal/adapter/gin/middleware"
	"user-account-service/internal/docs"
)

// SetupRouter configures and returns a Gin router with all routes and
// middleware. API routes are registered from the route-metadata table,
// the same table the documentation is generated from.
func SetupRouter(routes []docs.RouteDescriptor, docsHandler *handler.DocsHandler, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "user-account-service",
		})
	})

	// API routes from the metadata table
	for _, r := range routes {
		router.Handle(r.Method, r.GinPath(), r.Handler)
	}

	// Interactive reference page and the document it embeds
	router.GET("/api", docsHandler.Reference)
	router.GET("/api/openapi.json", docsHandler.OpenAPI)

	// Swagger UI over the same document
	router.GET("/swagger/*any", gin.WrapF(httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.json"),
	)))

	return router
}
