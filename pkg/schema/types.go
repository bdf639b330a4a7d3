package schema

// ElementType tags a form element with its input semantics. The builtin set
// is closed-ish: the element registry defines which tags are accepted, and
// additional tags can be registered without touching this package.
type ElementType string

const (
	ElementTypeText       ElementType = "text"
	ElementTypeEmail      ElementType = "email"
	ElementTypeNumber     ElementType = "number"
	ElementTypeTextarea   ElementType = "textarea"
	ElementTypeSelect     ElementType = "select"
	ElementTypeCheckbox   ElementType = "checkbox"
	ElementTypeRadioGroup ElementType = "radio-group"
	ElementTypeDate       ElementType = "date"
	ElementTypeFile       ElementType = "file"
	ElementTypeSignature  ElementType = "signature"
)

// Canonical validation rule names understood by the default rule set.
const (
	RuleRequired  = "required"
	RuleEmail     = "email"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleMin       = "min"
	RuleMax       = "max"
	RulePattern   = "pattern"
)

// RuleState captures one validation rule's configuration on an element. Every
// rule carries the same shape; parameterless rules (required, email) leave
// Value unset.
type RuleState struct {
	Enabled bool `json:"enabled"`
	Value   any  `json:"value,omitempty"`
}

// FormElement describes a single input inside a form schema: its type tag,
// the widget kind handed to the toolkit, open-ended widget props, and the
// per-rule validation state. ID is assigned at creation and immutable
// thereafter; Name is an optional human label distinct from the ID.
type FormElement struct {
	ID              string               `json:"id"`
	Type            ElementType          `json:"type"`
	Name            string               `json:"name,omitempty"`
	Component       string               `json:"component"`
	Props           map[string]any       `json:"props"`
	ValidationRules map[string]RuleState `json:"validationRules"`
}

// FieldKey returns the key under which this element's value lives in a value
// map. The element ID is the key; Name is display-only. Keeping a single key
// policy means stored payloads and live sessions always agree.
func (e FormElement) FieldKey() string {
	return e.ID
}

// Clone returns a deep copy of the element. Props values are copied
// structurally for maps and slices; other values are treated as immutable.
func (e FormElement) Clone() FormElement {
	out := e
	out.Props = cloneAnyMap(e.Props)
	if e.ValidationRules != nil {
		out.ValidationRules = make(map[string]RuleState, len(e.ValidationRules))
		for name, state := range e.ValidationRules {
			state.Value = cloneAny(state.Value)
			out.ValidationRules[name] = state
		}
	}
	return out
}

// FormSchema is the declarative description of a form: a display title plus
// an ordered element sequence. Order is the on-screen top-to-bottom order and
// is significant; reordering is a first-class operation.
type FormSchema struct {
	Title    string        `json:"title"`
	Elements []FormElement `json:"elements"`
}

// Clone returns a deep copy of the schema. Engines hand out clones so
// observers never share mutable state with a session.
func (s FormSchema) Clone() FormSchema {
	out := FormSchema{Title: s.Title}
	if s.Elements != nil {
		out.Elements = make([]FormElement, len(s.Elements))
		for i, el := range s.Elements {
			out.Elements[i] = el.Clone()
		}
	}
	return out
}

// IndexOf returns the position of the element with the given id, or -1.
func (s FormSchema) IndexOf(id string) int {
	for i, el := range s.Elements {
		if el.ID == id {
			return i
		}
	}
	return -1
}

// ElementByID returns the element with the given id.
func (s FormSchema) ElementByID(id string) (FormElement, bool) {
	if idx := s.IndexOf(id); idx >= 0 {
		return s.Elements[idx], true
	}
	return FormElement{}, false
}

func cloneAnyMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = cloneAny(v)
	}
	return out
}

func cloneAny(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneAnyMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = cloneAny(v)
		}
		return out
	case []string:
		return append([]string(nil), typed...)
	default:
		return typed
	}
}
