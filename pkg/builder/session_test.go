package builder

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/schema"
)

// sequentialIDs returns a generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestAddElementUsesRegistryDefaults(t *testing.T) {
	session := New(WithIDGenerator(sequentialIDs()))

	el, err := session.AddElement(schema.ElementTypeEmail)
	if err != nil {
		t.Fatalf("AddElement: %v", err)
	}

	if el.ID != "id-1" {
		t.Fatalf("id = %q, want %q", el.ID, "id-1")
	}
	if el.Type != schema.ElementTypeEmail {
		t.Fatalf("type = %q, want email", el.Type)
	}
	if el.Component != "text-field" {
		t.Fatalf("component = %q, want text-field", el.Component)
	}
	if !el.ValidationRules[schema.RuleEmail].Enabled {
		t.Fatal("email rule should be enabled by default")
	}
}

func TestAddElementAssignsUniqueIDs(t *testing.T) {
	session := New()

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		el, err := session.AddElement(schema.ElementTypeText)
		if err != nil {
			t.Fatalf("AddElement: %v", err)
		}
		if _, dup := seen[el.ID]; dup {
			t.Fatalf("duplicate id %q", el.ID)
		}
		seen[el.ID] = struct{}{}
	}
	if got := len(session.Schema().Elements); got != 20 {
		t.Fatalf("elements = %d, want 20", got)
	}
}

func TestAddElementAtIndex(t *testing.T) {
	session := New(WithIDGenerator(sequentialIDs()))

	for i := 0; i < 3; i++ {
		if _, err := session.AddElement(schema.ElementTypeText); err != nil {
			t.Fatalf("AddElement: %v", err)
		}
	}
	if _, err := session.AddElement(schema.ElementTypeCheckbox, 1); err != nil {
		t.Fatalf("AddElement at index: %v", err)
	}

	want := []string{"id-1", "id-4", "id-2", "id-3"}
	got := make([]string, 0, 4)
	for _, el := range session.Schema().Elements {
		got = append(got, el.ID)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAddElementUnknownType(t *testing.T) {
	session := New()

	if _, err := session.AddElement("hologram"); err == nil {
		t.Fatal("expected error for unknown element type")
	}
}

func TestRemoveElementNotFound(t *testing.T) {
	session := New()

	err := session.RemoveElement("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("RemoveElement = %v, want ErrNotFound", err)
	}
}

func TestMoveElementRestoresOrder(t *testing.T) {
	session := New(WithIDGenerator(sequentialIDs()))
	for i := 0; i < 3; i++ {
		if _, err := session.AddElement(schema.ElementTypeText); err != nil {
			t.Fatalf("AddElement: %v", err)
		}
	}
	before := session.Schema()

	if err := session.MoveElement("id-1", 2); err != nil {
		t.Fatalf("MoveElement: %v", err)
	}
	if err := session.MoveElement("id-1", 0); err != nil {
		t.Fatalf("MoveElement back: %v", err)
	}
	if diff := cmp.Diff(before, session.Schema()); diff != "" {
		t.Fatalf("schema changed after move and restore (-want +got):\n%s", diff)
	}

	if err := session.MoveElement("missing", 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MoveElement(missing) = %v, want ErrNotFound", err)
	}
}

func TestUpdatePropsMergesPartial(t *testing.T) {
	session := New(WithIDGenerator(sequentialIDs()))
	el, err := session.AddElement(schema.ElementTypeText)
	if err != nil {
		t.Fatalf("AddElement: %v", err)
	}

	if err := session.UpdateProps(el.ID, map[string]any{"label": "Nickname"}); err != nil {
		t.Fatalf("UpdateProps: %v", err)
	}

	got, ok := session.Schema().ElementByID(el.ID)
	if !ok {
		t.Fatal("element disappeared")
	}
	if got.Props["label"] != "Nickname" {
		t.Fatalf("label = %v, want Nickname", got.Props["label"])
	}
	if _, ok := got.Props["placeholder"]; !ok {
		t.Fatal("partial update dropped untouched props")
	}

	if err := session.UpdateProps("missing", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateProps(missing) = %v, want ErrNotFound", err)
	}
}

func TestUpdateValidation(t *testing.T) {
	session := New(WithIDGenerator(sequentialIDs()))
	el, err := session.AddElement(schema.ElementTypeText)
	if err != nil {
		t.Fatalf("AddElement: %v", err)
	}

	state := schema.RuleState{Enabled: true, Value: 5}
	if err := session.UpdateValidation(el.ID, schema.RuleMinLength, state); err != nil {
		t.Fatalf("UpdateValidation: %v", err)
	}

	got, _ := session.Schema().ElementByID(el.ID)
	if diff := cmp.Diff(state, got.ValidationRules[schema.RuleMinLength]); diff != "" {
		t.Fatalf("rule state mismatch (-want +got):\n%s", diff)
	}
}

func TestObserversReceiveSnapshots(t *testing.T) {
	session := New(WithIDGenerator(sequentialIDs()))

	var changes []schema.FormSchema
	session.OnChange(func(s schema.FormSchema) {
		changes = append(changes, s)
	})

	var commits int
	session.OnCommit(func(s schema.FormSchema) {
		commits++
	})

	if _, err := session.AddElement(schema.ElementTypeText); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	session.SetTitle("Renamed")

	if len(changes) != 2 {
		t.Fatalf("change notifications = %d, want 2", len(changes))
	}

	// Mutating a snapshot must not leak into the session.
	changes[0].Elements[0].Props["label"] = "Tampered"
	got, _ := session.Schema().ElementByID("id-1")
	if got.Props["label"] == "Tampered" {
		t.Fatal("observer snapshot shares state with session")
	}

	saved := session.Save()
	if commits != 1 {
		t.Fatalf("commit notifications = %d, want 1", commits)
	}
	if saved.Title != "Renamed" {
		t.Fatalf("saved title = %q, want Renamed", saved.Title)
	}
}

func TestWithSchemaStartsFromCopy(t *testing.T) {
	seed := schema.FormSchema{
		Title: "Seed",
		Elements: []schema.FormElement{
			{ID: "a", Type: schema.ElementTypeText, Component: "text-field", Props: map[string]any{"label": "A"}},
		},
	}
	session := New(WithSchema(seed))

	if err := session.RemoveElement("a"); err != nil {
		t.Fatalf("RemoveElement: %v", err)
	}
	if len(seed.Elements) != 1 {
		t.Fatal("session mutated the caller's schema")
	}
}
