package docs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// ScalarCDN is the script the reference page loads the viewer widget from.
const ScalarCDN = "https://cdn.jsdelivr.net/npm/@scalar/api-reference"

// ScalarConfig configures the interactive reference viewer.
type ScalarConfig struct {
	Theme string `json:"theme"`
}

var scalarPage = template.Must(template.New("scalar").Parse(`<!doctype html>
<html>
<head>
    <title>{{.Title}}</title>
    <meta charset="utf-8"/>
    <meta
            name="viewport"
            content="width=device-width, initial-scale=1"/>
</head>
<body>

<script
        id="api-reference"
        data-configuration='{{.Configuration}}'
        type="application/json">
    {{.Spec}}
</script>
<script src="{{.CDN}}"></script>
</body>
</html>
`))

// RenderScalarPage renders the HTML reference page embedding the given
// OpenAPI document inside the viewer widget.
func RenderScalarPage(title string, spec []byte, cfg ScalarConfig) ([]byte, error) {
	configuration, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal viewer configuration: %w", err)
	}

	var buf bytes.Buffer
	err = scalarPage.Execute(&buf, map[string]any{
		"Title":         title,
		"Spec":          template.JS(spec),
		"Configuration": template.JS(configuration),
		"CDN":           ScalarCDN,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render reference page: %w", err)
	}
	return buf.Bytes(), nil
}
