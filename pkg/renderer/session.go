package renderer

import (
	"fmt"

	"github.com/goliatone/go-formkit/pkg/schema"
	"github.com/goliatone/go-formkit/pkg/validation"
)

// State identifies where a render session is in its lifecycle.
type State string

const (
	StateInitializing State = "initializing"
	StateActive       State = "active"
	StateSubmitted    State = "submitted"
	StateRejected     State = "rejected"
)

// Outcome is the result of a submit attempt. Validation failure is a normal
// outcome, not an error: Valid is false and Errors maps field keys to the
// first failing message.
type Outcome struct {
	Valid  bool
	Values map[string]any
	Errors map[string]string
}

// SubmitObserver receives the live value snapshot of each valid submission.
type SubmitObserver func(map[string]any)

// Session renders one schema into live values: one value per element, seeded
// from initial values or type defaults, updated by widget change events, and
// validated on explicit submit. A session owns its value map exclusively and
// lives on a single goroutine, the UI event loop.
type Session struct {
	schema   schema.FormSchema
	toolkit  Toolkit
	rules    *validation.Rules
	readOnly bool
	initial  map[string]any

	state    State
	values   map[string]any
	controls map[string]Control
	errors   map[string]string

	submitObservers []SubmitObserver
}

// New builds a render session for the schema, seeds the values, and
// instantiates one control per element through the toolkit. The session is
// Active when New returns.
func New(formSchema schema.FormSchema, options ...Option) (*Session, error) {
	if err := formSchema.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		schema:   formSchema.Clone(),
		toolkit:  noopToolkit{},
		rules:    validation.DefaultRules(),
		state:    StateInitializing,
		values:   make(map[string]any),
		controls: make(map[string]Control),
		errors:   make(map[string]string),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	for _, element := range s.schema.Elements {
		key := element.FieldKey()
		value, seeded := s.initial[key]
		if !seeded {
			value = defaultValueFor(element)
		}
		s.values[key] = value

		control, err := s.toolkit.Instantiate(element.Component, element.Props, value, s.changeEmitter(key))
		if err != nil {
			return nil, fmt.Errorf("renderer: instantiate %q: %w", element.Component, err)
		}
		if control != nil {
			s.controls[key] = control
		}
	}
	s.initial = nil

	s.state = StateActive
	return s, nil
}

// State reports the session's current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// ReadOnly reports whether the session suppresses mutation.
func (s *Session) ReadOnly() bool {
	return s.readOnly
}

// Schema returns a copy of the schema this session renders.
func (s *Session) Schema() schema.FormSchema {
	return s.schema.Clone()
}

// OnSubmit subscribes to valid submissions. Observers receive the live value
// snapshot; storage encoding is a separate, explicitly invoked step.
func (s *Session) OnSubmit(fn SubmitObserver) {
	if fn != nil {
		s.submitObservers = append(s.submitObservers, fn)
	}
}

// SetValue records a change event for one field. Exactly one key changes per
// call; there is no cross-field derivation. Read-only sessions reject all
// updates. After a rejection, editing a field clears that field's error and
// returns the session to Active.
func (s *Session) SetValue(fieldKey string, value any) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if _, ok := s.values[fieldKey]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, fieldKey)
	}

	s.values[fieldKey] = value

	if s.state == StateRejected {
		if _, had := s.errors[fieldKey]; had {
			delete(s.errors, fieldKey)
			if control, ok := s.controls[fieldKey]; ok {
				control.ClearError()
			}
		}
		s.state = StateActive
	}
	return nil
}

// Value returns the current live value for a field key.
func (s *Session) Value(fieldKey string) (any, bool) {
	value, ok := s.values[fieldKey]
	return value, ok
}

// Values returns a copy of the current live value map.
func (s *Session) Values() map[string]any {
	out := make(map[string]any, len(s.values))
	for key, value := range s.values {
		out[key] = value
	}
	return out
}

// Errors returns the field error map from the last rejected submit.
func (s *Session) Errors() map[string]string {
	if len(s.errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.errors))
	for key, message := range s.errors {
		out[key] = message
	}
	return out
}

// Submit validates every element in schema order against its current value.
// Zero failures produce a valid Outcome carrying the live values and notify
// submit observers; the session then re-enters Active so follow-up submits
// are possible. One or more failures produce an invalid Outcome, push the
// messages at the erroring controls, and leave the session Rejected until
// the next edit. Read-only sessions cannot submit.
func (s *Session) Submit() (Outcome, error) {
	if s.readOnly {
		return Outcome{}, ErrReadOnly
	}

	fieldErrors := make(map[string]string)
	for _, element := range s.schema.Elements {
		key := element.FieldKey()
		messages, err := s.rules.Evaluate(element, s.values[key])
		if err != nil {
			return Outcome{}, err
		}
		if len(messages) > 0 {
			fieldErrors[key] = messages[0]
		}
	}

	if len(fieldErrors) > 0 {
		s.state = StateRejected
		s.errors = fieldErrors
		for key, message := range fieldErrors {
			if control, ok := s.controls[key]; ok {
				control.ShowError(message)
			}
		}
		return Outcome{Valid: false, Errors: s.Errors()}, nil
	}

	for key := range s.errors {
		if control, ok := s.controls[key]; ok {
			control.ClearError()
		}
	}
	s.errors = make(map[string]string)
	s.state = StateSubmitted

	snapshot := s.Values()
	for _, fn := range s.submitObservers {
		fn(s.Values())
	}

	// Multi-submit policy: the session stays usable after a successful
	// submission.
	s.state = StateActive
	return Outcome{Valid: true, Values: snapshot}, nil
}

func (s *Session) changeEmitter(fieldKey string) func(any) {
	return func(value any) {
		// Read-only and unknown-key events are dropped; widget event streams
		// have nowhere to return an error to.
		_ = s.SetValue(fieldKey, value)
	}
}

func defaultValueFor(element schema.FormElement) any {
	switch element.Type {
	case schema.ElementTypeCheckbox:
		return false
	case schema.ElementTypeFile:
		return nil
	case schema.ElementTypeNumber, schema.ElementTypeSelect, schema.ElementTypeRadioGroup, schema.ElementTypeDate:
		return nil
	default:
		return ""
	}
}
