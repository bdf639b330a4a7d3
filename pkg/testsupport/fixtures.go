// Package testsupport provides shared fixtures for the formkit test suites.
package testsupport

import (
	"testing"

	"github.com/goliatone/go-formkit/pkg/elements"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// ContactSchema returns a small three-field schema: a required name, an email
// with the email rule enabled, and an optional message.
func ContactSchema(t *testing.T) schema.FormSchema {
	t.Helper()

	return schema.FormSchema{
		Title: "Contact Us",
		Elements: []schema.FormElement{
			{
				ID:        "f-name",
				Type:      schema.ElementTypeText,
				Name:      "name",
				Component: elements.ComponentTextField,
				Props: map[string]any{
					"label":       "Full Name",
					"placeholder": "Ada Lovelace",
				},
				ValidationRules: map[string]schema.RuleState{
					schema.RuleRequired:  {Enabled: true},
					schema.RuleMinLength: {Enabled: true, Value: 2},
				},
			},
			{
				ID:        "f-email",
				Type:      schema.ElementTypeEmail,
				Name:      "email",
				Component: elements.ComponentTextField,
				Props: map[string]any{
					"label":       "Email",
					"placeholder": "name@example.com",
				},
				ValidationRules: map[string]schema.RuleState{
					schema.RuleRequired: {Enabled: true},
					schema.RuleEmail:    {Enabled: true},
				},
			},
			{
				ID:        "f-message",
				Type:      schema.ElementTypeTextarea,
				Name:      "message",
				Component: elements.ComponentTextarea,
				Props: map[string]any{
					"label": "Message",
					"rows":  4,
				},
				ValidationRules: map[string]schema.RuleState{
					schema.RuleMaxLength: {Enabled: true, Value: 500},
				},
			},
		},
	}
}

// UploadSchema returns a schema exercising the asset-bearing element types: a
// multi-file upload and a signature pad.
func UploadSchema(t *testing.T) schema.FormSchema {
	t.Helper()

	return schema.FormSchema{
		Title: "Document Intake",
		Elements: []schema.FormElement{
			{
				ID:        "f-docs",
				Type:      schema.ElementTypeFile,
				Name:      "documents",
				Component: elements.ComponentFileInput,
				Props: map[string]any{
					"label":    "Documents",
					"multiple": true,
				},
				ValidationRules: map[string]schema.RuleState{
					schema.RuleRequired: {Enabled: true},
				},
			},
			{
				ID:        "f-signature",
				Type:      schema.ElementTypeSignature,
				Name:      "signature",
				Component: elements.ComponentSignaturePad,
				Props: map[string]any{
					"label": "Signature",
				},
				ValidationRules: map[string]schema.RuleState{},
			},
		},
	}
}

// ChoiceSchema returns a schema with a select and a radio group, both sharing
// the same option list.
func ChoiceSchema(t *testing.T) schema.FormSchema {
	t.Helper()

	options := []any{"Red", "Green", "Blue"}
	return schema.FormSchema{
		Title: "Preferences",
		Elements: []schema.FormElement{
			{
				ID:        "f-color",
				Type:      schema.ElementTypeSelect,
				Name:      "color",
				Component: elements.ComponentSelect,
				Props: map[string]any{
					"label":   "Favorite Color",
					"options": append([]any(nil), options...),
				},
				ValidationRules: map[string]schema.RuleState{
					schema.RuleRequired: {Enabled: true},
				},
			},
			{
				ID:        "f-accent",
				Type:      schema.ElementTypeRadioGroup,
				Name:      "accent",
				Component: elements.ComponentRadioGroup,
				Props: map[string]any{
					"label":   "Accent Color",
					"options": append([]any(nil), options...),
				},
				ValidationRules: map[string]schema.RuleState{},
			},
		},
	}
}
