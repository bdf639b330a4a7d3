package elements

import "github.com/goliatone/go-formkit/pkg/schema"

// NewRegistry constructs a registry pre-populated with the builtin element
// catalog. Each entry carries the widget kind, the default props a freshly
// added element starts with, and its default validation rule states.
func NewRegistry() *Registry {
	registry := New()

	registry.MustRegister(schema.ElementTypeText, Definition{
		Component: ComponentTextField,
		Props: map[string]any{
			"label":       "Text Field",
			"placeholder": "",
		},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired:  {},
			schema.RuleMinLength: {},
			schema.RuleMaxLength: {},
		},
	})

	registry.MustRegister(schema.ElementTypeEmail, Definition{
		Component: ComponentTextField,
		Props: map[string]any{
			"label":       "Email",
			"placeholder": "name@example.com",
		},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired: {},
			schema.RuleEmail:    {Enabled: true},
		},
	})

	registry.MustRegister(schema.ElementTypeNumber, Definition{
		Component: ComponentNumberField,
		Props: map[string]any{
			"label": "Number",
		},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired: {},
			schema.RuleMin:      {},
			schema.RuleMax:      {},
		},
	})

	registry.MustRegister(schema.ElementTypeTextarea, Definition{
		Component: ComponentTextarea,
		Props: map[string]any{
			"label": "Text Area",
			"rows":  3,
		},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired:  {},
			schema.RuleMinLength: {},
			schema.RuleMaxLength: {},
		},
	})

	registry.MustRegister(schema.ElementTypeSelect, Definition{
		Component: ComponentSelect,
		Props: map[string]any{
			"label":   "Select",
			"options": []any{"Option 1", "Option 2"},
		},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired: {},
		},
	})

	registry.MustRegister(schema.ElementTypeCheckbox, Definition{
		Component: ComponentCheckbox,
		Props: map[string]any{
			"label": "Checkbox",
		},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired: {},
		},
	})

	registry.MustRegister(schema.ElementTypeRadioGroup, Definition{
		Component: ComponentRadioGroup,
		Props: map[string]any{
			"label":   "Radio Group",
			"options": []any{"Option 1", "Option 2"},
		},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired: {},
		},
	})

	registry.MustRegister(schema.ElementTypeDate, Definition{
		Component: ComponentDatePicker,
		Props: map[string]any{
			"label": "Date",
		},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired: {},
		},
	})

	// File and signature elements never carry text-length rules; their values
	// are binary assets, not strings.
	registry.MustRegister(schema.ElementTypeFile, Definition{
		Component: ComponentFileInput,
		Props: map[string]any{
			"label":    "File Upload",
			"multiple": true,
		},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired: {},
		},
	})

	registry.MustRegister(schema.ElementTypeSignature, Definition{
		Component: ComponentSignaturePad,
		Props: map[string]any{
			"label": "Signature",
		},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired: {},
		},
	})

	return registry
}
