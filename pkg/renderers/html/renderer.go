// Package html renders a read-only HTML preview of a form schema using
// embedded pongo2 templates. User-authored text reaching the markup (labels,
// help text, option captions) is stripped of markup before rendering.
package html

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formkit/pkg/elements"
	"github.com/goliatone/go-formkit/pkg/schema"
)

const formTemplate = "templates/form.html"

// Option configures the Renderer before construction.
type Option func(*Renderer)

// WithTemplates overrides the embedded template bundle. The bundle must
// provide templates/form.html.
func WithTemplates(files fs.FS) Option {
	return func(r *Renderer) {
		if files != nil {
			r.files = files
		}
	}
}

// WithChromeClass overrides a single chrome class in the rendered markup.
func WithChromeClass(class ChromeClass, value string) Option {
	return func(r *Renderer) {
		if value != "" {
			r.classes[class] = value
		}
	}
}

// Renderer produces HTML previews of form schemas.
type Renderer struct {
	mu sync.Mutex

	files     fs.FS
	set       *pongo2.TemplateSet
	form      *pongo2.Template
	sanitizer *bluemonday.Policy
	classes   map[ChromeClass]string
}

// New constructs a Renderer backed by the embedded templates unless
// WithTemplates overrides them.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		files:     embeddedTemplates,
		sanitizer: bluemonday.StrictPolicy(),
		classes: map[ChromeClass]string{
			ClassForm:    string(ClassForm),
			ClassHeader:  string(ClassHeader),
			ClassField:   string(ClassField),
			ClassLabel:   string(ClassLabel),
			ClassControl: string(ClassControl),
			ClassHelp:    string(ClassHelp),
			ClassError:   string(ClassError),
			ClassActions: string(ClassActions),
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	r.set = pongo2.NewSet("formkit-html", pongo2.NewFSLoader(r.files))
	return r, nil
}

// Render produces the preview markup for the schema. Values, when provided,
// pre-populate the controls so stored submissions can be reviewed.
func (r *Renderer) Render(ctx context.Context, form schema.FormSchema, values map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := form.Validate(); err != nil {
		return "", fmt.Errorf("html: invalid schema: %w", err)
	}

	tmpl, err := r.formTmpl()
	if err != nil {
		return "", err
	}

	fields := make([]map[string]any, 0, len(form.Elements))
	for _, element := range form.Elements {
		fields = append(fields, r.fieldContext(element, values[element.FieldKey()]))
	}

	viewContext := pongo2.Context{
		"title":   r.sanitizer.Sanitize(form.Title),
		"classes": r.classContext(),
		"fields":  fields,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return "", fmt.Errorf("html: execute template: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) formTmpl() (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.form != nil {
		return r.form, nil
	}
	tmpl, err := r.set.FromFile(formTemplate)
	if err != nil {
		return nil, fmt.Errorf("html: load template %q: %w", formTemplate, err)
	}
	r.form = tmpl
	return tmpl, nil
}

func (r *Renderer) classContext() map[string]any {
	return map[string]any{
		"form":    r.classes[ClassForm],
		"header":  r.classes[ClassHeader],
		"field":   r.classes[ClassField],
		"label":   r.classes[ClassLabel],
		"control": r.classes[ClassControl],
		"help":    r.classes[ClassHelp],
		"error":   r.classes[ClassError],
		"actions": r.classes[ClassActions],
	}
}

func (r *Renderer) fieldContext(element schema.FormElement, value any) map[string]any {
	kind, inputType := controlKind(element.Component)
	if kind == "input" && element.Type == schema.ElementTypeEmail {
		inputType = "email"
	}

	field := map[string]any{
		"id":         element.ID,
		"key":        element.FieldKey(),
		"kind":       kind,
		"input_type": inputType,
		"label":      r.sanitizer.Sanitize(stringProp(element.Props, "label")),
		"help":       r.sanitizer.Sanitize(stringProp(element.Props, "helpText")),
		"required":   element.ValidationRules[schema.RuleRequired].Enabled,
	}

	if placeholder := stringProp(element.Props, "placeholder"); placeholder != "" {
		field["placeholder"] = placeholder
	}

	switch kind {
	case "textarea":
		rows := 4
		if n, ok := element.Props["rows"].(int); ok && n > 0 {
			rows = n
		} else if f, ok := element.Props["rows"].(float64); ok && f > 0 {
			rows = int(f)
		}
		field["rows"] = rows
		field["value"] = stringValue(value)
	case "select", "radio":
		field["options"] = r.optionContext(element.Props, value)
	case "checkbox":
		checked, _ := value.(bool)
		field["checked"] = checked
	case "file":
		multiple, _ := element.Props["multiple"].(bool)
		field["multiple"] = multiple
	case "signature":
		// Signature pads replay stored strokes client side, nothing to seed.
	default:
		field["value"] = stringValue(value)
	}

	return field
}

func (r *Renderer) optionContext(props map[string]any, value any) []map[string]any {
	raw, _ := props["options"].([]any)
	selected := stringValue(value)

	out := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		optionValue := stringValue(entry)
		out = append(out, map[string]any{
			"value":    optionValue,
			"label":    r.sanitizer.Sanitize(optionValue),
			"selected": selected != "" && optionValue == selected,
		})
	}
	return out
}

// controlKind maps a component name to the template branch and, for plain
// inputs, the HTML input type attribute.
func controlKind(component string) (kind, inputType string) {
	switch component {
	case elements.ComponentTextarea:
		return "textarea", ""
	case elements.ComponentSelect:
		return "select", ""
	case elements.ComponentRadioGroup:
		return "radio", ""
	case elements.ComponentCheckbox:
		return "checkbox", ""
	case elements.ComponentSignaturePad:
		return "signature", ""
	case elements.ComponentFileInput:
		return "file", "file"
	case elements.ComponentNumberField:
		return "input", "number"
	case elements.ComponentDatePicker:
		return "input", "date"
	default:
		return "input", "text"
	}
}

func stringProp(props map[string]any, key string) string {
	if props == nil {
		return ""
	}
	s, _ := props[key].(string)
	return s
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
