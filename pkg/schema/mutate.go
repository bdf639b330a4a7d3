package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrElementNotFound is returned when a mutation references an id that is
	// not present in the schema.
	ErrElementNotFound = errors.New("schema: element not found")
	// ErrDuplicateID is returned when an insert would violate id uniqueness.
	ErrDuplicateID = errors.New("schema: duplicate element id")
)

// InsertElement inserts el at the given position, clamped to [0, len]. An
// empty id or an id already present in the schema is rejected, keeping the
// uniqueness invariant intact.
func (s *FormSchema) InsertElement(el FormElement, at int) error {
	if strings.TrimSpace(el.ID) == "" {
		return errors.New("schema: element id is required")
	}
	if s.IndexOf(el.ID) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateID, el.ID)
	}

	if at < 0 {
		at = 0
	}
	if at > len(s.Elements) {
		at = len(s.Elements)
	}

	s.Elements = append(s.Elements, FormElement{})
	copy(s.Elements[at+1:], s.Elements[at:])
	s.Elements[at] = el
	return nil
}

// RemoveElement removes the element with the given id. Absent ids report
// ErrElementNotFound so callers can distinguish a stale reference from a
// successful removal.
func (s *FormSchema) RemoveElement(id string) error {
	idx := s.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	s.Elements = append(s.Elements[:idx], s.Elements[idx+1:]...)
	return nil
}

// MoveElement relocates the element with the given id to newIndex, clamped to
// [0, len-1]. The relative order of every other element is preserved.
func (s *FormSchema) MoveElement(id string, newIndex int) error {
	idx := s.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}

	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(s.Elements)-1 {
		newIndex = len(s.Elements) - 1
	}
	if newIndex == idx {
		return nil
	}

	el := s.Elements[idx]
	rest := append(s.Elements[:idx], s.Elements[idx+1:]...)
	rest = append(rest, FormElement{})
	copy(rest[newIndex+1:], rest[newIndex:])
	rest[newIndex] = el
	s.Elements = rest
	return nil
}

// Validate checks the structural invariants: non-empty ids and id uniqueness.
func (s FormSchema) Validate() error {
	seen := make(map[string]struct{}, len(s.Elements))
	for i, el := range s.Elements {
		if strings.TrimSpace(el.ID) == "" {
			return fmt.Errorf("schema: element %d has no id", i)
		}
		if _, dup := seen[el.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, el.ID)
		}
		seen[el.ID] = struct{}{}
	}
	return nil
}
