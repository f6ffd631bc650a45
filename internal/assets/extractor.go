package assets

import (
	"reflect"
	"strings"

	"github.com/dramac-main/dramac-cms-sub001/internal/identity"
	"github.com/dramac-main/dramac-cms-sub001/internal/pages"
	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

// urlBearingKeys is the heuristic fallback used when a component type carries
// no catalog definition. Matching is case-insensitive on the leaf key.
var urlBearingKeys = map[string]bool{
	"src":             true,
	"source":          true,
	"href":            true,
	"link":            true,
	"url":             true,
	"image":           true,
	"imageurl":        true,
	"background":      true,
	"backgroundimage": true,
	"background_image": true,
	"poster":          true,
	"icon":            true,
	"logo":            true,
	"video":           true,
	"videourl":        true,
	"file":            true,
	"fileurl":         true,
	"avatar":          true,
	"thumbnail":       true,
}

var excludedSchemes = []string{"data:", "javascript:", "mailto:", "tel:"}

// Extractor walks component trees and collects deduplicated asset records.
// When the field catalog knows a component type, only its declared URL-bearing
// fields are considered; unknown types fall back to key and shape heuristics.
type Extractor struct {
	catalog interfaces.FieldCatalog
	logger  interfaces.Logger
}

func NewExtractor(catalog interfaces.FieldCatalog, logger interfaces.Logger) *Extractor {
	return &Extractor{
		catalog: catalog,
		logger:  logger,
	}
}

// Extract returns one Asset per distinct original URL referenced anywhere in
// the given components, in first-seen order. Input components are never
// mutated. Cyclic property graphs terminate.
func (e *Extractor) Extract(components []*pages.ComponentInstance) []*Asset {
	state := &extractState{
		byID:  map[string]*Asset{},
		order: nil,
	}
	for _, component := range components {
		if component == nil {
			continue
		}
		var declared map[string]interfaces.FieldKind
		if e.catalog != nil {
			if fields, ok := e.catalog.Fields(component.Type); ok {
				declared = fields
			}
		}
		visited := map[uintptr]bool{}
		e.walkValue(state, component.ID, declared, "", component.Props, visited)
	}
	result := make([]*Asset, 0, len(state.order))
	for _, id := range state.order {
		result = append(result, state.byID[id])
	}
	if e.logger != nil && len(result) > 0 {
		e.logger.Debug("extracted assets", "count", len(result))
	}
	return result
}

type extractState struct {
	byID  map[string]*Asset
	order []string
}

func (e *Extractor) walkValue(state *extractState, componentID string, declared map[string]interfaces.FieldKind, key string, value any, visited map[uintptr]bool) {
	switch typed := value.(type) {
	case string:
		e.consider(state, componentID, declared, key, typed)
	case map[string]any:
		ptr := reflect.ValueOf(typed).Pointer()
		if visited[ptr] {
			return
		}
		visited[ptr] = true
		for childKey, child := range typed {
			e.walkValue(state, componentID, declared, childKey, child, visited)
		}
	case []any:
		ptr := reflect.ValueOf(typed).Pointer()
		if visited[ptr] {
			return
		}
		visited[ptr] = true
		for _, child := range typed {
			e.walkValue(state, componentID, declared, key, child, visited)
		}
	case map[string]string:
		for childKey, child := range typed {
			e.consider(state, componentID, declared, childKey, child)
		}
	case []string:
		for _, child := range typed {
			e.consider(state, componentID, declared, key, child)
		}
	}
}

func (e *Extractor) consider(state *extractState, componentID string, declared map[string]interfaces.FieldKind, key, value string) {
	candidate := strings.TrimSpace(value)
	if candidate == "" {
		return
	}
	lower := strings.ToLower(candidate)
	for _, scheme := range excludedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return
		}
	}
	if !e.admits(declared, key, candidate) {
		return
	}
	e.record(state, componentID, candidate)
}

// admits decides whether a string property is an asset reference. Declared
// catalog fields win over heuristics for known component types.
func (e *Extractor) admits(declared map[string]interfaces.FieldKind, key, value string) bool {
	if declared != nil {
		if kind, ok := declared[key]; ok {
			return kind.URLBearing()
		}
		// Unlisted keys on a cataloged type still admit values whose shape
		// is unambiguous.
		return looksLikeAssetURL(value)
	}
	if urlBearingKeys[strings.ToLower(key)] {
		return !strings.ContainsAny(value, " \t\n")
	}
	return looksLikeAssetURL(value)
}

// looksLikeAssetURL accepts strings whose shape marks them as asset
// references: any http or protocol-relative URL, or any reference carrying a
// known asset extension. Slash-prefixed paths without a known extension are
// rejected since those are routes, not assets.
func looksLikeAssetURL(value string) bool {
	if strings.ContainsAny(value, " \t\n") {
		return false
	}
	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") {
		return true
	}
	ext := urlExtension(value)
	if ext == "" {
		return false
	}
	_, known := extensionTypes[ext]
	return known
}

func (e *Extractor) record(state *extractState, componentID, url string) {
	id := identity.AssetID(url)
	if id == "" {
		return
	}
	asset, exists := state.byID[id]
	if !exists {
		assetType, mime := classify(url)
		asset = &Asset{
			ID:           id,
			OriginalURL:  url,
			OptimizedURL: url,
			Type:         assetType,
			MimeType:     mime,
		}
		state.byID[id] = asset
		state.order = append(state.order, id)
	}
	if componentID != "" && !containsString(asset.UsedBy, componentID) {
		asset.UsedBy = append(asset.UsedBy, componentID)
	}
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
