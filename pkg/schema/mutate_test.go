package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleSchema() FormSchema {
	return FormSchema{
		Title: "Sample",
		Elements: []FormElement{
			{ID: "a", Type: ElementTypeText, Component: "text-field"},
			{ID: "b", Type: ElementTypeEmail, Component: "text-field"},
			{ID: "c", Type: ElementTypeCheckbox, Component: "checkbox"},
		},
	}
}

func elementIDs(s FormSchema) []string {
	out := make([]string, 0, len(s.Elements))
	for _, el := range s.Elements {
		out = append(out, el.ID)
	}
	return out
}

func TestInsertElement(t *testing.T) {
	tests := []struct {
		name    string
		at      int
		id      string
		want    []string
		wantErr error
	}{
		{name: "at start", at: 0, id: "x", want: []string{"x", "a", "b", "c"}},
		{name: "in middle", at: 1, id: "x", want: []string{"a", "x", "b", "c"}},
		{name: "at end", at: 3, id: "x", want: []string{"a", "b", "c", "x"}},
		{name: "index clamped high", at: 99, id: "x", want: []string{"a", "b", "c", "x"}},
		{name: "index clamped low", at: -5, id: "x", want: []string{"x", "a", "b", "c"}},
		{name: "duplicate id", at: 0, id: "b", wantErr: ErrDuplicateID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sampleSchema()
			err := s.InsertElement(FormElement{ID: tc.id, Type: ElementTypeText}, tc.at)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("InsertElement error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("InsertElement: %v", err)
			}
			if diff := cmp.Diff(tc.want, elementIDs(s)); diff != "" {
				t.Fatalf("element order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsertElementEmptyID(t *testing.T) {
	s := sampleSchema()
	if err := s.InsertElement(FormElement{Type: ElementTypeText}, 0); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestRemoveElement(t *testing.T) {
	s := sampleSchema()
	if err := s.RemoveElement("b"); err != nil {
		t.Fatalf("RemoveElement: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, elementIDs(s)); diff != "" {
		t.Fatalf("element order mismatch (-want +got):\n%s", diff)
	}

	if err := s.RemoveElement("missing"); !errors.Is(err, ErrElementNotFound) {
		t.Fatalf("RemoveElement(missing) = %v, want ErrElementNotFound", err)
	}
}

func TestMoveElement(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		newIndex int
		want     []string
		wantErr  error
	}{
		{name: "forward", id: "a", newIndex: 2, want: []string{"b", "c", "a"}},
		{name: "backward", id: "c", newIndex: 0, want: []string{"c", "a", "b"}},
		{name: "same index", id: "b", newIndex: 1, want: []string{"a", "b", "c"}},
		{name: "clamped high", id: "a", newIndex: 99, want: []string{"b", "c", "a"}},
		{name: "clamped low", id: "c", newIndex: -1, want: []string{"c", "a", "b"}},
		{name: "missing", id: "zz", newIndex: 0, wantErr: ErrElementNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sampleSchema()
			err := s.MoveElement(tc.id, tc.newIndex)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("MoveElement error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("MoveElement: %v", err)
			}
			if diff := cmp.Diff(tc.want, elementIDs(s)); diff != "" {
				t.Fatalf("element order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveThenRestoreKeepsOrder(t *testing.T) {
	s := sampleSchema()
	original := elementIDs(s)

	if err := s.MoveElement("a", 2); err != nil {
		t.Fatalf("MoveElement: %v", err)
	}
	if err := s.MoveElement("a", 0); err != nil {
		t.Fatalf("MoveElement back: %v", err)
	}
	if diff := cmp.Diff(original, elementIDs(s)); diff != "" {
		t.Fatalf("order not restored (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	s := sampleSchema()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	s.Elements = append(s.Elements, FormElement{ID: "a", Type: ElementTypeText})
	if err := s.Validate(); err == nil {
		t.Fatal("expected duplicate id error")
	}

	s = sampleSchema()
	s.Elements[1].ID = ""
	if err := s.Validate(); err == nil {
		t.Fatal("expected empty id error")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := sampleSchema()
	s.Elements[0].Props = map[string]any{"label": "Name", "options": []any{"x"}}
	s.Elements[0].ValidationRules = map[string]RuleState{RuleRequired: {Enabled: true}}

	clone := s.Clone()
	clone.Elements[0].Props["label"] = "Changed"
	clone.Elements[0].Props["options"].([]any)[0] = "y"
	clone.Elements[0].ValidationRules[RuleRequired] = RuleState{}

	if got := s.Elements[0].Props["label"]; got != "Name" {
		t.Fatalf("clone mutation leaked into props: %v", got)
	}
	if got := s.Elements[0].Props["options"].([]any)[0]; got != "x" {
		t.Fatalf("clone mutation leaked into nested slice: %v", got)
	}
	if !s.Elements[0].ValidationRules[RuleRequired].Enabled {
		t.Fatal("clone mutation leaked into validation rules")
	}
}
