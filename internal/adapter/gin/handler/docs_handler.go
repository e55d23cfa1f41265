package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-service/internal/docs"
)

// DocsHandler serves the generated API description and the interactive
// reference page. Both payloads are rendered once at construction and
// are read-only afterwards.
type DocsHandler struct {
	specJSON []byte
	page     []byte
	log      *zap.Logger
}

// NewDocsHandler renders the OpenAPI document and the Scalar reference page
// for the given route-metadata table output.
func NewDocsHandler(doc *docs.Document, cfg docs.ScalarConfig, log *zap.Logger) (*DocsHandler, error) {
	specJSON, err := doc.JSON()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize OpenAPI document: %w", err)
	}

	page, err := docs.RenderScalarPage(doc.Info.Title, specJSON, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render reference page: %w", err)
	}

	log.Debug("API documentation rendered",
		zap.Int("spec_bytes", len(specJSON)),
		zap.String("theme", cfg.Theme),
	)

	return &DocsHandler{
		specJSON: specJSON,
		page:     page,
		log:      log,
	}, nil
}

// Reference handles GET /api
func (h *DocsHandler) Reference(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}

// OpenAPI handles GET /api/openapi.json
func (h *DocsHandler) OpenAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.specJSON)
}
