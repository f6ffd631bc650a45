package assets

import (
	"reflect"

	"github.com/dramac-main/dramac-cms-sub001/internal/pages"
)

// RewriteURLs returns a deep copy of the components with every string equal
// to an extracted asset's original URL replaced by that asset's resolved
// address. The input tree is never touched and cyclic property graphs
// terminate.
func RewriteURLs(components []*pages.ComponentInstance, extracted []*Asset) []*pages.ComponentInstance {
	if len(extracted) == 0 {
		return pages.CloneComponents(components)
	}
	replacements := make(map[string]string, len(extracted))
	for _, asset := range extracted {
		if asset == nil || asset.OriginalURL == "" {
			continue
		}
		resolved := asset.ResolvedURL()
		if resolved != "" && resolved != asset.OriginalURL {
			replacements[asset.OriginalURL] = resolved
		}
	}

	cloned := pages.CloneComponents(components)
	if len(replacements) == 0 {
		return cloned
	}
	for _, component := range cloned {
		if component == nil {
			continue
		}
		visited := map[uintptr]bool{}
		rewriteValue(component.Props, replacements, visited)
	}
	return cloned
}

func rewriteValue(value any, replacements map[string]string, visited map[uintptr]bool) {
	switch typed := value.(type) {
	case map[string]any:
		ptr := reflect.ValueOf(typed).Pointer()
		if visited[ptr] {
			return
		}
		visited[ptr] = true
		for key, child := range typed {
			if text, ok := child.(string); ok {
				if replacement, found := replacements[text]; found {
					typed[key] = replacement
				}
				continue
			}
			rewriteValue(child, replacements, visited)
		}
	case []any:
		ptr := reflect.ValueOf(typed).Pointer()
		if visited[ptr] {
			return
		}
		visited[ptr] = true
		for index, child := range typed {
			if text, ok := child.(string); ok {
				if replacement, found := replacements[text]; found {
					typed[index] = replacement
				}
				continue
			}
			rewriteValue(child, replacements, visited)
		}
	case map[string]string:
		for key, child := range typed {
			if replacement, found := replacements[child]; found {
				typed[key] = replacement
			}
		}
	case []string:
		for index, child := range typed {
			if replacement, found := replacements[child]; found {
				typed[index] = replacement
			}
		}
	}
}
