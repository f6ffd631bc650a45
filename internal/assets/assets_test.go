package assets

import (
	"strings"
	"testing"
	"time"

	"github.com/dramac-main/dramac-cms-sub001/internal/pages"
	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

type stubCatalog struct {
	fields map[string]map[string]interfaces.FieldKind
}

func (s *stubCatalog) Fields(componentType string) (map[string]interfaces.FieldKind, bool) {
	fields, ok := s.fields[strings.ToLower(componentType)]
	return fields, ok
}

func TestExtractDeduplicatesAcrossComponents(t *testing.T) {
	extractor := NewExtractor(nil, nil)
	components := []*pages.ComponentInstance{
		{
			ID:   "hero",
			Type: "image",
			Props: map[string]any{
				"src": "https://cdn.example.com/banner.jpg",
			},
		},
		{
			ID:   "footer",
			Type: "image",
			Props: map[string]any{
				"src": "https://cdn.example.com/banner.jpg",
			},
		},
	}

	extracted := extractor.Extract(components)
	if len(extracted) != 1 {
		t.Fatalf("expected 1 deduplicated asset, got %d", len(extracted))
	}
	asset := extracted[0]
	if asset.Type != TypeImage {
		t.Fatalf("expected image type, got %s", asset.Type)
	}
	if asset.MimeType != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %s", asset.MimeType)
	}
	if len(asset.UsedBy) != 2 {
		t.Fatalf("expected both components in used by, got %v", asset.UsedBy)
	}
}

func TestExtractSkipsNonNetworkSchemes(t *testing.T) {
	extractor := NewExtractor(nil, nil)
	components := []*pages.ComponentInstance{
		{
			ID:   "cta",
			Type: "button",
			Props: map[string]any{
				"href":  "mailto:hello@example.com",
				"icon":  "data:image/png;base64,AAAA",
				"link":  "javascript:void(0)",
				"phone": "tel:+15550100",
				"src":   "/media/logo.svg",
			},
		},
	}

	extracted := extractor.Extract(components)
	if len(extracted) != 1 {
		t.Fatalf("expected only the real asset, got %d", len(extracted))
	}
	if extracted[0].OriginalURL != "/media/logo.svg" {
		t.Fatalf("unexpected asset %s", extracted[0].OriginalURL)
	}
}

func TestExtractHonorsCatalogFields(t *testing.T) {
	catalog := &stubCatalog{
		fields: map[string]map[string]interfaces.FieldKind{
			"gallery": {
				"cover":   interfaces.FieldKindImage,
				"caption": interfaces.FieldKindText,
			},
		},
	}
	extractor := NewExtractor(catalog, nil)
	components := []*pages.ComponentInstance{
		{
			ID:   "gal-1",
			Type: "Gallery",
			Props: map[string]any{
				"cover":   "uploads/cover",
				"caption": "https://example.com/not-an-asset.png",
			},
		},
	}

	extracted := extractor.Extract(components)
	if len(extracted) != 1 {
		t.Fatalf("expected declared field only, got %d assets", len(extracted))
	}
	if extracted[0].OriginalURL != "uploads/cover" {
		t.Fatalf("unexpected asset %s", extracted[0].OriginalURL)
	}
}

func TestExtractWalksNestedStructures(t *testing.T) {
	extractor := NewExtractor(nil, nil)
	components := []*pages.ComponentInstance{
		{
			ID:   "slider",
			Type: "slider",
			Props: map[string]any{
				"slides": []any{
					map[string]any{"image": "/media/one.png"},
					map[string]any{"image": "/media/two.png"},
				},
			},
		},
	}

	extracted := extractor.Extract(components)
	if len(extracted) != 2 {
		t.Fatalf("expected 2 nested assets, got %d", len(extracted))
	}
}

func TestExtractKeepsCaseDistinctURLsApart(t *testing.T) {
	extractor := NewExtractor(nil, nil)
	components := []*pages.ComponentInstance{
		{ID: "a", Type: "image", Props: map[string]any{"src": "/media/Logo.PNG"}},
		{ID: "b", Type: "image", Props: map[string]any{"src": "/media/logo.png"}},
	}

	extracted := extractor.Extract(components)
	if len(extracted) != 2 {
		t.Fatalf("case-distinct urls are distinct resources, got %d assets", len(extracted))
	}
	if extracted[0].ID == extracted[1].ID {
		t.Fatalf("expected distinct asset ids, both %s", extracted[0].ID)
	}
}

func TestExtractAdmitsByShape(t *testing.T) {
	extractor := NewExtractor(nil, nil)
	components := []*pages.ComponentInstance{
		{
			ID:   "mixed",
			Type: "custom",
			Props: map[string]any{
				"slides":   []any{"https://cdn.example.com/banner"},
				"badge":    "logo.png",
				"internal": "/about",
			},
		},
	}

	extracted := extractor.Extract(components)
	urls := map[string]bool{}
	for _, asset := range extracted {
		urls[asset.OriginalURL] = true
	}
	if !urls["https://cdn.example.com/banner"] {
		t.Fatalf("extensionless http url must be admitted, got %v", urls)
	}
	if !urls["logo.png"] {
		t.Fatalf("bare reference with a known extension must be admitted, got %v", urls)
	}
	if urls["/about"] {
		t.Fatalf("extensionless route must not become an asset, got %v", urls)
	}
}

func TestExtractTerminatesOnCyclicProps(t *testing.T) {
	props := map[string]any{"src": "/media/loop.png"}
	props["self"] = props
	extractor := NewExtractor(nil, nil)

	extracted := extractor.Extract([]*pages.ComponentInstance{
		{ID: "loop", Type: "image", Props: props},
	})
	if len(extracted) != 1 {
		t.Fatalf("expected 1 asset from cyclic props, got %d", len(extracted))
	}
}

func TestOptimizeAddsAlternateFormatsAndInlines(t *testing.T) {
	options := DefaultOptimizeOptions()
	options.GenerateAVIF = true
	optimizer := NewOptimizer(options, nil)

	input := []*Asset{
		{
			ID:           "asset-1",
			OriginalURL:  "/media/photo.jpg",
			Type:         TypeImage,
			MimeType:     "image/jpeg",
			OriginalSize: 1024,
		},
		{
			ID:           "asset-2",
			OriginalURL:  "/media/huge.png",
			Type:         TypeImage,
			MimeType:     "image/png",
			OriginalSize: 500_000,
		},
	}

	optimized := optimizer.Optimize(input)
	if len(optimized) != 2 {
		t.Fatalf("expected 2 optimized assets, got %d", len(optimized))
	}

	small := optimized[0]
	if !small.Inlined {
		t.Fatal("expected small asset to be inlined")
	}
	if len(small.AlternateFormats) != 2 {
		t.Fatalf("expected webp and avif formats, got %v", small.AlternateFormats)
	}
	if small.AlternateFormats[0].URL != "/media/photo.webp" {
		t.Fatalf("unexpected webp url %s", small.AlternateFormats[0].URL)
	}

	large := optimized[1]
	if large.Inlined {
		t.Fatal("large asset must not be inlined")
	}

	if input[0].Inlined || len(input[0].AlternateFormats) != 0 {
		t.Fatal("optimizer mutated its input")
	}
}

func TestOptimizeInlinesAnySmallTypedAsset(t *testing.T) {
	optimizer := NewOptimizer(OptimizeOptions{
		InlineSmallAssets: true,
		InlineThreshold:   4096,
	}, nil)

	optimized := optimizer.Optimize([]*Asset{
		{ID: "s", OriginalURL: "/js/widget.js", Type: TypeScript, OriginalSize: 100},
		{ID: "v", OriginalURL: "/media/clip.mp4", Type: TypeVideo, OriginalSize: 100},
		{ID: "u", OriginalURL: "/media/unsized.png", Type: TypeImage},
	})
	if !optimized[0].Inlined || !optimized[1].Inlined {
		t.Fatalf("small assets of any type are inline-eligible: %+v", optimized)
	}
	if optimized[2].Inlined {
		t.Fatal("unknown size must never be flagged inline")
	}
}

func TestBuildManifestPartitionsAndComputesSavings(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	manifest := BuildManifest([]*Asset{
		{ID: "a", Type: TypeImage, OriginalSize: 1000, OptimizedSize: 600},
		{ID: "b", Type: TypeStyle, OriginalSize: 500, OptimizedSize: 400},
	}, now)

	if manifest.TotalAssets != 2 {
		t.Fatalf("expected 2 assets, got %d", manifest.TotalAssets)
	}
	if manifest.TotalOriginalSize != 1500 || manifest.TotalOptimizedSize != 1000 {
		t.Fatalf("size totals wrong: %d/%d", manifest.TotalOriginalSize, manifest.TotalOptimizedSize)
	}
	if manifest.SavingsPercent != 33 {
		t.Fatalf("expected rounded savings 33, got %.4f", manifest.SavingsPercent)
	}
	if got := manifest.ByType[TypeImage]; got != 1 {
		t.Fatalf("expected 1 image counted, got %d", got)
	}
	if got, ok := manifest.ByType[TypeVideo]; !ok || got != 0 {
		t.Fatalf("zero-count types must still be present, got %v", manifest.ByType)
	}
	if manifest.GeneratedAt != "2026-03-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp %s", manifest.GeneratedAt)
	}
}

func TestBuildManifestZeroOriginalSize(t *testing.T) {
	manifest := BuildManifest([]*Asset{{ID: "a", Type: TypeOther}}, time.Now())
	if manifest.SavingsPercent != 0 {
		t.Fatalf("expected zero savings for zero original size, got %f", manifest.SavingsPercent)
	}
}

func TestRewriteURLsLeavesInputUntouched(t *testing.T) {
	components := []*pages.ComponentInstance{
		{
			ID:   "hero",
			Type: "image",
			Props: map[string]any{
				"src": "/media/photo.jpg",
				"nested": map[string]any{
					"poster": "/media/photo.jpg",
				},
			},
		},
	}
	extracted := []*Asset{
		{
			ID:           "asset-1",
			OriginalURL:  "/media/photo.jpg",
			OptimizedURL: "/assets/photo-optimized.jpg",
		},
	}

	rewritten := RewriteURLs(components, extracted)
	if got := rewritten[0].Props["src"]; got != "/assets/photo-optimized.jpg" {
		t.Fatalf("top-level url not rewritten: %v", got)
	}
	nested := rewritten[0].Props["nested"].(map[string]any)
	if nested["poster"] != "/assets/photo-optimized.jpg" {
		t.Fatalf("nested url not rewritten: %v", nested["poster"])
	}
	if components[0].Props["src"] != "/media/photo.jpg" {
		t.Fatal("input components were mutated")
	}
}

func TestRewriteURLsPrefersDataURI(t *testing.T) {
	components := []*pages.ComponentInstance{
		{ID: "icon", Type: "image", Props: map[string]any{"src": "/media/icon.svg"}},
	}
	extracted := []*Asset{
		{
			ID:           "asset-1",
			OriginalURL:  "/media/icon.svg",
			OptimizedURL: "/assets/icon.svg",
			Inlined:      true,
			DataURI:      "data:image/svg+xml;base64,PHN2Zy8+",
		},
	}

	rewritten := RewriteURLs(components, extracted)
	if rewritten[0].Props["src"] != "data:image/svg+xml;base64,PHN2Zy8+" {
		t.Fatalf("expected data uri substitution, got %v", rewritten[0].Props["src"])
	}
}
