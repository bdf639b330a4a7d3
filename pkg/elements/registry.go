package elements

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formkit/pkg/schema"
)

// ErrUnknownType is returned when a lookup references an element type that
// has not been registered.
var ErrUnknownType = errors.New("elements: unknown element type")

// Definition captures the defaults for one element type: which widget kind it
// renders as, the props a freshly added element starts with, and the
// validation rules that are meaningful for the type.
type Definition struct {
	Component       string
	Props           map[string]any
	ValidationRules map[string]schema.RuleState
}

// Registry is the static element catalog. Lookups are pure and return deep
// copies so callers can mutate the result freely. Registration of additional
// types is allowed at wiring time; the registry is safe for concurrent reads.
type Registry struct {
	mu          sync.RWMutex
	definitions map[schema.ElementType]Definition
}

// New creates an empty registry. Most callers want NewRegistry, which seeds
// the builtin catalog.
func New() *Registry {
	return &Registry{
		definitions: make(map[schema.ElementType]Definition),
	}
}

// Register associates a definition with an element type. Existing entries are
// replaced; the definition is copied on the way in.
func (r *Registry) Register(elementType schema.ElementType, def Definition) error {
	if strings.TrimSpace(string(elementType)) == "" {
		return errors.New("elements: element type is required")
	}
	if strings.TrimSpace(def.Component) == "" {
		return fmt.Errorf("elements: component for %q is required", elementType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.definitions[elementType] = cloneDefinition(def)
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying catalog
// setup.
func (r *Registry) MustRegister(elementType schema.ElementType, def Definition) {
	if err := r.Register(elementType, def); err != nil {
		panic(err)
	}
}

// Lookup returns the defaults registered for an element type. Unregistered
// tags fail with ErrUnknownType.
func (r *Registry) Lookup(elementType schema.ElementType) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.definitions[elementType]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownType, elementType)
	}
	return cloneDefinition(def), nil
}

// Has reports whether an element type is registered.
func (r *Registry) Has(elementType schema.ElementType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.definitions[elementType]
	return ok
}

// Types returns the registered element types in sorted order.
func (r *Registry) Types() []schema.ElementType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]schema.ElementType, 0, len(r.definitions))
	for elementType := range r.definitions {
		types = append(types, elementType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func cloneDefinition(src Definition) Definition {
	out := Definition{Component: src.Component}
	if src.Props != nil {
		out.Props = make(map[string]any, len(src.Props))
		for key, value := range src.Props {
			out.Props[key] = cloneValue(value)
		}
	}
	if src.ValidationRules != nil {
		out.ValidationRules = make(map[string]schema.RuleState, len(src.ValidationRules))
		for name, state := range src.ValidationRules {
			state.Value = cloneValue(state.Value)
			out.ValidationRules[name] = state
		}
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = cloneValue(v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = cloneValue(v)
		}
		return out
	default:
		return typed
	}
}
