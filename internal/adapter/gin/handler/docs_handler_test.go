package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"user-account-service/internal/docs"
)

func setupDocsHandler(t *testing.T) *DocsHandler {
	doc := docs.BuildDocument(
		docs.Info{Title: "user-account-service API", Version: "1.0.0"},
		[]docs.RouteDescriptor{
			{
				Method:      http.MethodGet,
				Path:        "/business/{businessId}/users/{userId}",
				OperationID: "get_user_by_id",
				Responses: []docs.ResponseDescriptor{
					{Status: http.StatusOK, Description: "User"},
				},
			},
		},
		nil,
	)

	h, err := NewDocsHandler(doc, docs.ScalarConfig{Theme: "laserwave"}, zaptest.NewLogger(t))
	assert.NoError(t, err)
	return h
}

func TestDocsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Reference Page", func(t *testing.T) {
		h := setupDocsHandler(t)
		r := gin.New()
		r.GET("/api", h.Reference)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "api-reference")
		assert.Contains(t, w.Body.String(), "laserwave")
		assert.Contains(t, w.Body.String(), docs.ScalarCDN)
	})

	t.Run("OpenAPI Document", func(t *testing.T) {
		h := setupDocsHandler(t)
		r := gin.New()
		r.GET("/api/openapi.json", h.OpenAPI)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/openapi.json", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		assert.Contains(t, w.Body.String(), "/business/{businessId}/users/{userId}")
	})
}
