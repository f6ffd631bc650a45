package generator

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// outputDir derives the directory segment for a page route. Routes are
// normalized so arbitrary slugs and id fallbacks land on safe paths.
func outputDir(route string) string {
	trimmed := strings.Trim(strings.TrimSpace(route), "/")
	if trimmed == "" {
		return ""
	}
	segments := strings.Split(trimmed, "/")
	normalized := make([]string, 0, len(segments))
	for _, segment := range segments {
		cleaned, err := slug.Normalize(segment)
		if err != nil || cleaned == "" {
			cleaned = fallbackSegment(segment)
		}
		if cleaned != "" {
			normalized = append(normalized, cleaned)
		}
	}
	return strings.Join(normalized, "/")
}

func fallbackSegment(segment string) string {
	var out strings.Builder
	for _, r := range strings.ToLower(segment) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		default:
			out.WriteByte('-')
		}
	}
	return strings.Trim(out.String(), "-")
}

// filePath joins a page directory with a file name, keeping root pages flat.
func filePath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
