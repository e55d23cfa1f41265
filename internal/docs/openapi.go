package docs

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Info is the document-level metadata block.
type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// Document is an OpenAPI 3.1 description of the API surface.
type Document struct {
	OpenAPI    string              `json:"openapi"`
	Info       Info                `json:"info"`
	Paths      map[string]PathItem `json:"paths"`
	Components *Components         `json:"components,omitempty"`
}

// PathItem maps lowercase HTTP methods to operations.
type PathItem map[string]*Operation

// Operation describes one method on one path.
type Operation struct {
	OperationID string              `json:"operationId,omitempty"`
	Summary     string              `json:"summary,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

// Parameter describes an operation parameter.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Description string  `json:"description,omitempty"`
	Required    bool    `json:"required"`
	Schema      *Schema `json:"schema,omitempty"`
}

// Response describes one documented response.
type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

// MediaType wraps the schema of a response body.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Schema is a JSON schema fragment, either inline or a reference.
type Schema struct {
	Ref         string             `json:"$ref,omitempty"`
	Type        string             `json:"type,omitempty"`
	Format      string             `json:"format,omitempty"`
	Description string             `json:"description,omitempty"`
	Example     any                `json:"example,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Components holds the reusable schemas of the document.
type Components struct {
	Schemas map[string]*Schema `json:"schemas"`
}

// BuildDocument renders the route-metadata table into an OpenAPI document.
// The result is deterministic for a given table.
func BuildDocument(info Info, routes []RouteDescriptor, schemas []ObjectSchema) *Document {
	doc := &Document{
		OpenAPI: "3.1.0",
		Info:    info,
		Paths:   make(map[string]PathItem, len(routes)),
	}

	if len(schemas) > 0 {
		doc.Components = &Components{Schemas: make(map[string]*Schema, len(schemas))}
		for _, s := range schemas {
			doc.Components.Schemas[s.Name] = buildObjectSchema(s)
		}
	}

	for _, r := range routes {
		item, ok := doc.Paths[r.Path]
		if !ok {
			item = make(PathItem, 1)
			doc.Paths[r.Path] = item
		}
		item[strings.ToLower(r.Method)] = buildOperation(r)
	}

	return doc
}

func buildObjectSchema(s ObjectSchema) *Schema {
	schema := &Schema{
		Type:        "object",
		Description: s.Description,
		Properties:  make(map[string]*Schema, len(s.Fields)),
		Required:    make([]string, 0, len(s.Fields)),
	}
	for _, f := range s.Fields {
		schema.Properties[f.Name] = &Schema{
			Type:        f.Type,
			Format:      f.Format,
			Example:     f.Example,
			Description: f.Description,
		}
		schema.Required = append(schema.Required, f.Name)
	}
	return schema
}

func buildOperation(r RouteDescriptor) *Operation {
	op := &Operation{
		OperationID: r.OperationID,
		Summary:     r.Summary,
		Responses:   make(map[string]Response, len(r.Responses)),
	}

	for _, p := range r.Params {
		op.Parameters = append(op.Parameters, Parameter{
			Name:        p.Name,
			In:          p.In,
			Description: p.Description,
			Required:    p.Required,
			Schema:      &Schema{Type: p.Type, Format: p.Format},
		})
	}

	for _, resp := range r.Responses {
		out := Response{Description: resp.Description}
		if resp.ContentType != "" {
			media := MediaType{}
			if resp.SchemaName != "" {
				media.Schema = &Schema{Ref: "#/components/schemas/" + resp.SchemaName}
			}
			out.Content = map[string]MediaType{resp.ContentType: media}
		}
		op.Responses[fmt.Sprintf("%d", resp.Status)] = out
	}

	return op
}

// JSON serializes the document for serving.
func (d *Document) JSON() ([]byte, error) {
	return json.Marshal(d)
}
