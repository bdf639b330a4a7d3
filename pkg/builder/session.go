package builder

import (
	"fmt"

	"github.com/goliatone/go-formkit/pkg/elements"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// Observer receives full schema snapshots. Every snapshot is a deep copy; the
// session never shares its working state.
type Observer func(schema.FormSchema)

// Session is an interactive editing session over one working FormSchema. A
// session owns its schema exclusively for its lifetime and is intended for a
// single goroutine, the surrounding UI event loop. Every mutating operation
// emits the updated schema to change observers; Save emits on the separate
// committed channel.
type Session struct {
	schema     schema.FormSchema
	registry   *elements.Registry
	generateID IDGenerator

	changeObservers []Observer
	commitObservers []Observer
}

// New constructs a builder session applying any provided options. Missing
// dependencies fall back to the builtin element catalog and uuid ids.
func New(options ...Option) *Session {
	s := &Session{
		generateID: defaultIDGenerator,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.registry == nil {
		s.registry = elements.NewRegistry()
	}
	return s
}

// OnChange subscribes to live-edit snapshots. Builder UIs and the JSON
// preview both consume this single channel.
func (s *Session) OnChange(fn Observer) {
	if fn != nil {
		s.changeObservers = append(s.changeObservers, fn)
	}
}

// OnCommit subscribes to explicit saves, distinguishing confirmed schemas
// from live-edit previews.
func (s *Session) OnCommit(fn Observer) {
	if fn != nil {
		s.commitObservers = append(s.commitObservers, fn)
	}
}

// Schema returns a deep-copied snapshot of the working schema.
func (s *Session) Schema() schema.FormSchema {
	return s.schema.Clone()
}

// SetTitle updates the form title and emits a change.
func (s *Session) SetTitle(title string) {
	s.schema.Title = title
	s.emitChange()
}

// AddElement appends a new element of the given type, populated from the
// registry defaults and assigned a fresh unique id. An optional position hint
// inserts at that index instead (clamped to the valid range). The only
// failure mode is an unregistered type.
func (s *Session) AddElement(elementType schema.ElementType, at ...int) (schema.FormElement, error) {
	def, err := s.registry.Lookup(elementType)
	if err != nil {
		return schema.FormElement{}, err
	}

	element := schema.FormElement{
		ID:              s.generateID(),
		Type:            elementType,
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

	position := len(s.schema.Elements)
	if len(at) > 0 {
		position = at[0]
	}
	if err := s.schema.InsertElement(element, position); err != nil {
		return schema.FormElement{}, fmt.Errorf("builder: add element: %w", err)
	}

	s.emitChange()
	return element.Clone(), nil
}

// RemoveElement deletes the element with the given id. Absent ids report
// ErrNotFound.
func (s *Session) RemoveElement(id string) error {
	if err := s.schema.RemoveElement(id); err != nil {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	s.emitChange()
	return nil
}

// MoveElement relocates an element to newIndex, clamped to the valid range.
// The relative order of all other elements is preserved.
func (s *Session) MoveElement(id string, newIndex int) error {
	if err := s.schema.MoveElement(id, newIndex); err != nil {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	s.emitChange()
	return nil
}

// UpdateProps shallow-merges partial props into the element's props map.
func (s *Session) UpdateProps(id string, partial map[string]any) error {
	idx := s.schema.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	element := &s.schema.Elements[idx]
	if element.Props == nil {
		element.Props = make(map[string]any, len(partial))
	}
	for key, value := range partial {
		element.Props[key] = value
	}

	s.emitChange()
	return nil
}

// UpdateValidation sets or replaces one rule's state on the element.
func (s *Session) UpdateValidation(id, ruleName string, state schema.RuleState) error {
	idx := s.schema.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	element := &s.schema.Elements[idx]
	if element.ValidationRules == nil {
		element.ValidationRules = make(map[string]schema.RuleState)
	}
	element.ValidationRules[ruleName] = state

	s.emitChange()
	return nil
}

// Save emits the current schema on the committed channel, e.g. to hand the
// form off to a render session.
func (s *Session) Save() schema.FormSchema {
	snapshot := s.schema.Clone()
	for _, fn := range s.commitObservers {
		fn(snapshot.Clone())
	}
	return snapshot
}

func (s *Session) emitChange() {
	if len(s.changeObservers) == 0 {
		return
	}
	snapshot := s.schema.Clone()
	for _, fn := range s.changeObservers {
		fn(snapshot.Clone())
	}
}
