package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	ginhandler "user-account-service/internal/adapter/gin/handler"
	"user-account-service/internal/docs"
	usecase "user-account-service/internal/usecase/user"
)

func setupRouter(t *testing.T) *gin.Engine {
	logger := zaptest.NewLogger(t)

	userHandler := ginhandler.NewUserHandler(usecase.New(logger), logger)
	routes := []docs.RouteDescriptor{
		{
			Method:   http.MethodGet,
			Path:     "/business/{businessId}/users/{userId}",
			BindPath: "/users/{userId}",
			Handler:  userHandler.GetUser,
		},
	}

	document := docs.BuildDocument(
		docs.Info{Title: "user-account-service API", Version: "1.0.0"},
		routes,
		nil,
	)
	docsHandler, err := ginhandler.NewDocsHandler(document, docs.ScalarConfig{Theme: "laserwave"}, logger)
	assert.NoError(t, err)

	r := SetupRouter(routes, docsHandler, logger)
	gin.SetMode(gin.TestMode)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	t.Run("Health", func(t *testing.T) {
		w := get(setupRouter(t), "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "healthy")
	})

	t.Run("User Lookup Bound From Metadata Table", func(t *testing.T) {
		w := get(setupRouter(t), "/users/550e8400-e29b-41d4-a716-446655440000")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "550e8400-e29b-41d4-a716-446655440000")
	})

	t.Run("Reserved Identifier", func(t *testing.T) {
		w := get(setupRouter(t), "/users/00000000-0000-0000-0000-000000000000")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", w.Body.String())
	})

	t.Run("Malformed Identifier", func(t *testing.T) {
		w := get(setupRouter(t), "/users/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Reference Page", func(t *testing.T) {
		w := get(setupRouter(t), "/api")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "api-reference")
	})

	t.Run("OpenAPI Document", func(t *testing.T) {
		w := get(setupRouter(t), "/api/openapi.json")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/business/{businessId}/users/{userId}")
	})

	t.Run("Unmatched Path", func(t *testing.T) {
		w := get(setupRouter(t), "/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Request ID Header", func(t *testing.T) {
		w := get(setupRouter(t), "/health")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
