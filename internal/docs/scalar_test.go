package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderScalarPage(t *testing.T) {
	spec := []byte(`{"openapi":"3.1.0","info":{"title":"user-account-service API","version":"1.0.0"},"paths":{}}`)

	page, err := RenderScalarPage("user-account-service API", spec, ScalarConfig{Theme: "laserwave"})
	assert.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, `id="api-reference"`)
	assert.Contains(t, html, "laserwave")
	assert.Contains(t, html, ScalarCDN)
	assert.Contains(t, html, `"openapi":"3.1.0"`)
	assert.Contains(t, html, "<title>user-account-service API</title>")
}
