// Package formkit assembles the form designer building blocks: a schema
// model, a builder session for editing schemas, a renderer session for
// filling them in, and codecs for binary form assets. The root package
// re-exports the common entry points so most callers only import formkit.
package formkit

import (
	"context"

	"github.com/goliatone/go-formkit/pkg/assets"
	"github.com/goliatone/go-formkit/pkg/builder"
	"github.com/goliatone/go-formkit/pkg/elements"
	"github.com/goliatone/go-formkit/pkg/openapi"
	"github.com/goliatone/go-formkit/pkg/renderer"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// FormSchema is the serializable form definition edited by builder sessions
// and consumed by renderer sessions.
type FormSchema = schema.FormSchema

// FormElement is a single field definition inside a FormSchema.
type FormElement = schema.FormElement

// RuleState records whether a validation rule is enabled and its parameter.
type RuleState = schema.RuleState

// Builder is an editing session over a form schema.
type Builder = builder.Session

// Renderer is a fill-in session over a form schema.
type Renderer = renderer.Session

// Outcome is the result of a renderer submit attempt.
type Outcome = renderer.Outcome

// AssetRecord is the stored representation of an uploaded file.
type AssetRecord = assets.Record

// NewBuilder constructs a builder session. With no options it starts from an
// empty schema and the builtin element catalog.
func NewBuilder(options ...builder.Option) *builder.Session {
	return builder.New(options...)
}

// NewRenderer constructs a renderer session for the given schema.
func NewRenderer(form schema.FormSchema, options ...renderer.Option) (*renderer.Session, error) {
	return renderer.New(form, options...)
}

// NewElementRegistry returns the builtin element catalog, ready for custom
// type registration.
func NewElementRegistry() *elements.Registry {
	return elements.NewRegistry()
}

// ParseSchema decodes a JSON or YAML schema document.
func ParseSchema(data []byte) (schema.FormSchema, error) {
	return schema.ParseDocument(data)
}

// ImportOpenAPI derives a form schema from an OpenAPI operation's request
// body.
func ImportOpenAPI(ctx context.Context, doc []byte, operationID string, options ...openapi.Option) (schema.FormSchema, error) {
	return openapi.New(options...).Import(ctx, doc, operationID)
}

// PrepareForStorage encodes asset-bearing field values into storable records.
func PrepareForStorage(ctx context.Context, values map[string]any, els []schema.FormElement) (map[string]any, error) {
	return assets.PrepareForStorage(ctx, values, els)
}

// PrepareForDisplay readies a stored submission for rendering.
func PrepareForDisplay(stored map[string]any, els []schema.FormElement) map[string]any {
	return assets.PrepareForDisplay(stored, els)
}
