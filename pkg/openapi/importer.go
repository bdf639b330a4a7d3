// Package openapi derives form schemas from OpenAPI operations so existing
// API definitions can seed the form designer instead of starting from a blank
// canvas.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formkit/pkg/elements"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// Option customises the importer.
type Option func(*Importer)

// WithRegistry injects the element registry consulted for per-type defaults.
func WithRegistry(registry *elements.Registry) Option {
	return func(imp *Importer) {
		if registry != nil {
			imp.registry = registry
		}
	}
}

// WithIDGenerator overrides element id allocation, mirroring the builder's
// option so imports can be deterministic in tests.
func WithIDGenerator(generate func() string) Option {
	return func(imp *Importer) {
		if generate != nil {
			imp.generateID = generate
		}
	}
}

// Importer converts an OpenAPI operation's request body into a FormSchema.
type Importer struct {
	registry   *elements.Registry
	generateID func() string
}

// New constructs an Importer with the builtin element catalog.
func New(options ...Option) *Importer {
	imp := &Importer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(imp)
	}
	if imp.registry == nil {
		imp.registry = elements.NewRegistry()
	}
	return imp
}

// Import loads the OpenAPI document and maps the selected operation's JSON
// request body onto a form schema: one element per body property, with the
// property constraints translated into validation rule states.
func (imp *Importer) Import(ctx context.Context, doc []byte, operationID string) (schema.FormSchema, error) {
	if err := ctx.Err(); err != nil {
		return schema.FormSchema{}, err
	}
	if len(doc) == 0 {
		return schema.FormSchema{}, errors.New("openapi: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return schema.FormSchema{}, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc)
	if err != nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	body := requestBodySchema(operation)
	if body == nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: operation %q has no request body schema", operationID)
	}

	title := strings.TrimSpace(operation.Summary)
	if title == "" {
		title = operationID
	}

	out := schema.FormSchema{Title: title}
	required := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		property := body.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		_, isRequired := required[name]
		element, err := imp.elementFromProperty(name, property.Value, isRequired)
		if err != nil {
			return schema.FormSchema{}, err
		}
		if err := out.InsertElement(element, len(out.Elements)); err != nil {
			return schema.FormSchema{}, err
		}
	}

	return out, nil
}

func (imp *Importer) elementFromProperty(name string, property *openapi3.Schema, required bool) (schema.FormElement, error) {
	elementType := elementTypeFor(property)

	def, err := imp.registry.Lookup(elementType)
	if err != nil {
		return schema.FormElement{}, fmt.Errorf("openapi: property %q: %w", name, err)
	}

	element := schema.FormElement{
		ID:              imp.newID(name),
		Type:            elementType,
		Name:            name,
		Component:       def.Component,
		Props:           def.Props,
		ValidationRules: def.ValidationRules,
	}
	if element.Props == nil {
		element.Props = make(map[string]any)
	}
	if element.ValidationRules == nil {
		element.ValidationRules = make(map[string]schema.RuleState)
	}

	element.Props["label"] = labelFor(name, property)
	if property.Description != "" {
		element.Props["helpText"] = property.Description
	}
	if len(property.Enum) > 0 {
		element.Props["options"] = append([]any(nil), property.Enum...)
	}

	if required {
		element.ValidationRules[schema.RuleRequired] = schema.RuleState{Enabled: true}
	}
	if property.MinLength != 0 {
		element.ValidationRules[schema.RuleMinLength] = schema.RuleState{Enabled: true, Value: int(property.MinLength)}
	}
	if property.MaxLength != nil {
		element.ValidationRules[schema.RuleMaxLength] = schema.RuleState{Enabled: true, Value: int(*property.MaxLength)}
	}
	if property.Pattern != "" {
		element.ValidationRules[schema.RulePattern] = schema.RuleState{Enabled: true, Value: property.Pattern}
	}
	if property.Min != nil {
		element.ValidationRules[schema.RuleMin] = schema.RuleState{Enabled: true, Value: *property.Min}
	}
	if property.Max != nil {
		element.ValidationRules[schema.RuleMax] = schema.RuleState{Enabled: true, Value: *property.Max}
	}

	return element, nil
}

func (imp *Importer) newID(name string) string {
	if imp.generateID != nil {
		return imp.generateID()
	}
	return name
}

func elementTypeFor(property *openapi3.Schema) schema.ElementType {
	switch firstType(property.Type) {
	case "boolean":
		return schema.ElementTypeCheckbox
	case "integer", "number":
		return schema.ElementTypeNumber
	default:
		if len(property.Enum) > 0 {
			return schema.ElementTypeSelect
		}
		switch property.Format {
		case "email":
			return schema.ElementTypeEmail
		case "date", "date-time":
			return schema.ElementTypeDate
		case "binary", "byte":
			return schema.ElementTypeFile
		case "textarea":
			return schema.ElementTypeTextarea
		default:
			return schema.ElementTypeText
		}
	}
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func labelFor(name string, property *openapi3.Schema) string {
	if property.Title != "" {
		return property.Title
	}
	// snake_case and kebab-case property names read better title-cased.
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestBodySchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}
