// Package docs holds the route-metadata table the API is described by.
//
// Descriptors are plain data constructed once at startup and handed to
// both the router (which registers handlers from them) and the document
// builder (which renders them into an OpenAPI document). There is no
// annotation scanning and no ambient registry.
package docs

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// FieldSchema describes a single field of an object schema.
type FieldSchema struct {
	Name        string // JSON field name
	Type        string // JSON schema type (string, boolean, ...)
	Format      string // optional format qualifier (uuid, email, ...)
	Example     any    // example value shown in the documentation
	Description string
}

// ObjectSchema describes a named object schema exposed under components.
type ObjectSchema struct {
	Name        string
	Description string
	Fields      []FieldSchema
}

// ParamDescriptor describes a single operation parameter.
type ParamDescriptor struct {
	Name        string
	In          string // "path" or "query"
	Type        string
	Format      string
	Required    bool
	Description string
}

// ResponseDescriptor describes one documented response of an operation.
type ResponseDescriptor struct {
	Status      int
	Description string
	ContentType string // empty for responses without a documented body
	SchemaName  string // name of an ObjectSchema, empty for plain bodies
}

// RouteDescriptor describes one documented operation.
//
// Path is the path as documented. BindPath, when set, is the route the
// router actually registers; the documented path may carry parameters
// (such as a business scope) that the served route does not.
type RouteDescriptor struct {
	Method      string
	Path        string
	BindPath    string
	OperationID string
	Summary     string
	Params      []ParamDescriptor
	Responses   []ResponseDescriptor
	Handler     gin.HandlerFunc
}

// GinPath returns the path the router should register, in gin's
// colon-parameter form.
func (r RouteDescriptor) GinPath() string {
	path := r.BindPath
	if path == "" {
		path = r.Path
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segments[i] = ":" + seg[1:len(seg)-1]
		}
	}
	return strings.Join(segments, "/")
}
