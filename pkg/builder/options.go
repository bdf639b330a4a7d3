package builder

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-formkit/pkg/elements"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// IDGenerator allocates element ids. The default produces uuid v4 strings.
type IDGenerator func() string

// Option customises a builder session.
type Option func(*Session)

// WithRegistry injects the element registry consulted for defaults. Omitting
// it wires the builtin catalog.
func WithRegistry(registry *elements.Registry) Option {
	return func(s *Session) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithSchema seeds the session with an existing schema (for example one
// loaded from storage). The session works on its own copy.
func WithSchema(formSchema schema.FormSchema) Option {
	return func(s *Session) {
		s.schema = formSchema.Clone()
	}
}

// WithTitle sets the working schema's title without emitting a change.
func WithTitle(title string) Option {
	return func(s *Session) {
		s.schema.Title = title
	}
}

// WithIDGenerator overrides id allocation. Tests use this to get
// deterministic ids.
func WithIDGenerator(generator IDGenerator) Option {
	return func(s *Session) {
		if generator != nil {
			s.generateID = generator
		}
	}
}

func defaultIDGenerator() string {
	return uuid.NewString()
}
