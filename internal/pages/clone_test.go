package pages

import (
	"reflect"
	"testing"
)

func TestCloneComponentsDeepCopiesProps(t *testing.T) {
	source := []*ComponentInstance{
		{
			ID:   "hero",
			Type: "image",
			Props: map[string]any{
				"src": "/media/hero.jpg",
				"meta": map[string]any{
					"alt":  "Hero",
					"tags": []any{"banner", "wide"},
				},
			},
			Zones: map[string]Zone{
				"content": {ComponentIDs: []string{"child-1", "child-2"}},
			},
		},
	}

	cloned := CloneComponents(source)
	if !reflect.DeepEqual(source, cloned) {
		t.Fatalf("expected clone to be deep-equal to source")
	}

	cloned[0].Props["src"] = "/media/other.jpg"
	cloned[0].Props["meta"].(map[string]any)["alt"] = "Changed"
	cloned[0].Props["meta"].(map[string]any)["tags"].([]any)[0] = "edited"
	zone := cloned[0].Zones["content"]
	zone.ComponentIDs[0] = "mutated"

	if source[0].Props["src"] != "/media/hero.jpg" {
		t.Fatalf("source src mutated: %v", source[0].Props["src"])
	}
	meta := source[0].Props["meta"].(map[string]any)
	if meta["alt"] != "Hero" {
		t.Fatalf("source nested map mutated: %v", meta["alt"])
	}
	if meta["tags"].([]any)[0] != "banner" {
		t.Fatalf("source nested slice mutated: %v", meta["tags"])
	}
	if source[0].Zones["content"].ComponentIDs[0] != "child-1" {
		t.Fatalf("source zone mutated: %v", source[0].Zones["content"].ComponentIDs)
	}
}

func TestClonePropsSurvivesCyclicGraph(t *testing.T) {
	props := map[string]any{"label": "self"}
	props["self"] = props

	cloned := CloneProps(props)
	if cloned["label"] != "self" {
		t.Fatalf("expected label to survive, got %v", cloned["label"])
	}
	inner, ok := cloned["self"].(map[string]any)
	if !ok {
		t.Fatalf("expected cyclic reference to clone into a map, got %T", cloned["self"])
	}
	if len(inner) != 0 {
		t.Fatalf("expected cycle to terminate with an empty map, got %v", inner)
	}
}

func TestByIDSkipsBlankIdentifiers(t *testing.T) {
	components := []*ComponentInstance{
		{ID: "a", Type: "text"},
		{ID: "  ", Type: "text"},
		nil,
		{ID: "b", Type: "text"},
	}
	index := ByID(components)
	if len(index) != 2 {
		t.Fatalf("expected 2 indexed components, got %d", len(index))
	}
	if index["a"] == nil || index["b"] == nil {
		t.Fatalf("expected components a and b to be indexed")
	}
}

func TestPageRouteFallsBackToID(t *testing.T) {
	page := &Page{Slug: "   "}
	if got := page.Route(); got != page.ID.String() {
		t.Fatalf("expected route to fall back to id, got %q", got)
	}
	page.Slug = "about"
	if got := page.Route(); got != "about" {
		t.Fatalf("expected slug route, got %q", got)
	}
}
