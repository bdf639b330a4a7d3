package elements

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/schema"
)

func TestNewRegistryCoversBuiltinTypes(t *testing.T) {
	registry := NewRegistry()

	want := []schema.ElementType{
		schema.ElementTypeCheckbox,
		schema.ElementTypeDate,
		schema.ElementTypeEmail,
		schema.ElementTypeFile,
		schema.ElementTypeNumber,
		schema.ElementTypeRadioGroup,
		schema.ElementTypeSelect,
		schema.ElementTypeSignature,
		schema.ElementTypeText,
		schema.ElementTypeTextarea,
	}
	if diff := cmp.Diff(want, registry.Types()); diff != "" {
		t.Fatalf("builtin types mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupUnknownType(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Lookup("hologram")
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("Lookup error = %v, want ErrUnknownType", err)
	}
}

func TestLookupReturnsIndependentCopies(t *testing.T) {
	registry := NewRegistry()

	first, err := registry.Lookup(schema.ElementTypeSelect)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	first.Props["label"] = "Mutated"
	first.Props["options"].([]any)[0] = "Mutated"
	first.ValidationRules[schema.RuleRequired] = schema.RuleState{Enabled: true}

	second, err := registry.Lookup(schema.ElementTypeSelect)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if second.Props["label"] == "Mutated" {
		t.Fatal("lookup copies share props map")
	}
	if second.Props["options"].([]any)[0] == "Mutated" {
		t.Fatal("lookup copies share nested option slice")
	}
	if second.ValidationRules[schema.RuleRequired].Enabled {
		t.Fatal("lookup copies share validation rule map")
	}
}

func TestRegisterCustomType(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register("rating", Definition{
		Component: "star-rating",
		Props:     map[string]any{"label": "Rating", "max": 5},
		ValidationRules: map[string]schema.RuleState{
			schema.RuleRequired: {},
		},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if !registry.Has("rating") {
		t.Fatal("registry does not report custom type")
	}
	def, err := registry.Lookup("rating")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if def.Component != "star-rating" {
		t.Fatalf("component = %q, want %q", def.Component, "star-rating")
	}
}

func TestEmailDefaultsEnableEmailRule(t *testing.T) {
	registry := NewRegistry()

	def, err := registry.Lookup(schema.ElementTypeEmail)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !def.ValidationRules[schema.RuleEmail].Enabled {
		t.Fatal("email rule not enabled by default")
	}
	if def.ValidationRules[schema.RuleRequired].Enabled {
		t.Fatal("required should default to disabled")
	}
}
