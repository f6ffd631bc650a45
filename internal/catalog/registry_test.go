package catalog

import (
	"errors"
	"testing"

	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

func TestRegisterAndLookupFields(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register(Definition{
		Type: "Image",
		Fields: map[string]interfaces.FieldKind{
			"src":     interfaces.FieldKindImage,
			"alt":     interfaces.FieldKindText,
			"linkUrl": interfaces.FieldKindLink,
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	fields, ok := registry.Fields("image")
	if !ok {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if fields["src"] != interfaces.FieldKindImage {
		t.Fatalf("expected image kind for src, got %q", fields["src"])
	}
	if !fields["src"].URLBearing() {
		t.Fatal("expected image fields to be url-bearing")
	}
	if fields["alt"].URLBearing() {
		t.Fatal("expected text fields to not be url-bearing")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	def := Definition{Type: "hero"}
	if err := registry.Register(def); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(def); !errors.Is(err, ErrDuplicateDefinition) {
		t.Fatalf("expected ErrDuplicateDefinition, got %v", err)
	}
}

func TestRegisterRejectsBlankType(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(Definition{Type: "  "}); !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("expected ErrInvalidDefinition, got %v", err)
	}
}

func TestValidatePropsAgainstSchema(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register(Definition{
		Type: "button",
		Fields: map[string]interfaces.FieldKind{
			"href": interfaces.FieldKindLink,
		},
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"label"},
			"properties": map[string]any{
				"label": map[string]any{"type": "string"},
				"href":  map[string]any{"type": "string"},
			},
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := registry.ValidateProps("button", map[string]any{"label": "Go", "href": "/x"}); err != nil {
		t.Fatalf("expected valid props, got %v", err)
	}
	if err := registry.ValidateProps("button", map[string]any{"href": "/x"}); err == nil {
		t.Fatal("expected missing label to fail validation")
	}
	if err := registry.ValidateProps("unknown", nil); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestListIsSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"video", "hero", "markdown"} {
		if err := registry.Register(Definition{Type: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	got := registry.List()
	want := []string{"hero", "markdown", "video"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
