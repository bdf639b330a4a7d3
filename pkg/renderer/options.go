package renderer

import "github.com/goliatone/go-formkit/pkg/validation"

// Option customises a render session.
type Option func(*Session)

// WithToolkit injects the widget toolkit used to instantiate controls. When
// omitted the session runs headless: values and validation work normally but
// no controls exist, which suits tests and server-side processing.
func WithToolkit(toolkit Toolkit) Option {
	return func(s *Session) {
		if toolkit != nil {
			s.toolkit = toolkit
		}
	}
}

// WithInitialValues seeds the session's value map. Values are expected in
// live representation (run stored payloads through assets.PrepareForDisplay
// first).
func WithInitialValues(values map[string]any) Option {
	return func(s *Session) {
		s.initial = values
	}
}

// WithReadOnly puts the session in display-only mode: input events are
// suppressed and submission is not invocable.
func WithReadOnly(readOnly bool) Option {
	return func(s *Session) {
		s.readOnly = readOnly
	}
}

// WithRules overrides the validation rule set.
func WithRules(rules *validation.Rules) Option {
	return func(s *Session) {
		if rules != nil {
			s.rules = rules
		}
	}
}
