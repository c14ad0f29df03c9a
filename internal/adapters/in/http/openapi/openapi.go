// Package openapi embeds the OpenAPI 3 document of the dispatch API and
// exposes it to the request validator and the Swagger UI.
package openapi

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	return doc, nil
}

// swaggerDoc serves the document to swag, which backs echo-swagger's doc.json.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerOnce sync.Once

// RegisterSwagger publishes doc under swag's default instance name. swag
// panics on a second registration, so only the first call has an effect.
func RegisterSwagger(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return nil
}
