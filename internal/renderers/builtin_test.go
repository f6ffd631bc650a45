package renderers

import (
	"errors"
	"strings"
	"testing"

	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

func newBuiltinRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry()
	if err := RegisterBuiltIns(registry); err != nil {
		t.Fatalf("register builtins: %v", err)
	}
	return registry
}

func TestRegistryLookupIsCaseInsensitive(t *testing.T) {
	registry := newBuiltinRegistry(t)
	if _, ok := registry.Get("Heading"); !ok {
		t.Fatal("expected case-insensitive lookup")
	}
	if _, ok := registry.Get("unknown-type"); ok {
		t.Fatal("expected miss for unregistered type")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := newBuiltinRegistry(t)
	err := registry.Register("heading", func(map[string]any, map[string]string, interfaces.RenderContext) (string, error) {
		return "", nil
	})
	if !errors.Is(err, ErrDuplicateRenderer) {
		t.Fatalf("expected ErrDuplicateRenderer, got %v", err)
	}
}

func TestHeadingClampsLevelAndEscapes(t *testing.T) {
	registry := newBuiltinRegistry(t)
	render, _ := registry.Get("heading")

	out, err := render(map[string]any{"level": 9, "text": "<b>Hi</b>"}, nil, interfaces.RenderContext{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<h2>&lt;b&gt;Hi&lt;/b&gt;</h2>" {
		t.Fatalf("unexpected heading output: %q", out)
	}
}

func TestMarkdownRendersGFM(t *testing.T) {
	registry := newBuiltinRegistry(t)
	render, _ := registry.Get("markdown")

	out, err := render(map[string]any{"content": "# Title\n\nSome **bold** text."}, nil, interfaces.RenderContext{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("expected converted markdown, got %q", out)
	}
	if !strings.HasPrefix(out, `<div class="rich-text">`) {
		t.Fatalf("expected rich-text wrapper, got %q", out)
	}
}

func TestImageRendersPictureForAlternateSources(t *testing.T) {
	registry := newBuiltinRegistry(t)
	render, _ := registry.Get("image")

	out, err := render(map[string]any{
		"src":     "/media/photo.jpg",
		"alt":     "Photo",
		"width":   640,
		"sources": []any{"/media/photo.webp", "/media/photo.avif"},
	}, nil, interfaces.RenderContext{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `<source srcset="/media/photo.webp" type="image/webp">`) {
		t.Fatalf("expected webp source, got %q", out)
	}
	if !strings.Contains(out, `width="640"`) {
		t.Fatalf("expected width attribute, got %q", out)
	}
	if !strings.HasPrefix(out, "<picture>") || !strings.HasSuffix(out, "</picture>") {
		t.Fatalf("expected picture wrapper, got %q", out)
	}
}

func TestButtonPrefixesRelativeHrefWithBaseURL(t *testing.T) {
	registry := newBuiltinRegistry(t)
	render, _ := registry.Get("button")

	out, err := render(map[string]any{"label": "Read", "href": "/blog"}, nil, interfaces.RenderContext{BaseURL: "https://example.com"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `href="https://example.com/blog"`) {
		t.Fatalf("expected absolute href, got %q", out)
	}
}

func TestSectionWrapsRenderedChildren(t *testing.T) {
	registry := newBuiltinRegistry(t)
	render, _ := registry.Get("section")

	out, err := render(nil, map[string]string{"content": "<p>child</p>"}, interfaces.RenderContext{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != `<section><div class="section__inner"><p>child</p></div></section>` {
		t.Fatalf("unexpected section output: %q", out)
	}
}

func TestColumnsRenderZonesInStableOrder(t *testing.T) {
	registry := newBuiltinRegistry(t)
	render, _ := registry.Get("columns")

	out, err := render(nil, map[string]string{
		"right": "<p>r</p>",
		"left":  "<p>l</p>",
	}, interfaces.RenderContext{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Index(out, "<p>l</p>") > strings.Index(out, "<p>r</p>") {
		t.Fatalf("expected zone names sorted, got %q", out)
	}
}
