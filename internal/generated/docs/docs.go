// Package docs registers the OpenAPI document with swag so that echo-swagger
// can serve it under /swagger/doc.json.
package docs

import (
	"freight/internal/generated/servers"

	"github.com/swaggo/swag"
)

// openAPIDoc serves the document embedded in the generated server, so the UI
// always shows the contract the router was generated from.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	spec, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := spec.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}
