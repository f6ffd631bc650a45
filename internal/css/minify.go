package css

import "strings"

// Minify strips comments and collapses structural whitespace. It is a purely
// textual transform and its output is never longer than its input.
func Minify(css string) string {
	stripped := stripComments(css)

	var out strings.Builder
	out.Grow(len(stripped))
	pendingSpace := false
	var last rune
	for _, r := range stripped {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			pendingSpace = out.Len() > 0
			continue
		}
		if pendingSpace {
			if !isStructural(r) && !isStructural(last) {
				out.WriteByte(' ')
			}
			pendingSpace = false
		}
		out.WriteRune(r)
		last = r
	}

	minified := out.String()
	minified = strings.ReplaceAll(minified, ";}", "}")
	if len(minified) > len(css) {
		return css
	}
	return minified
}

func stripComments(css string) string {
	var out strings.Builder
	out.Grow(len(css))
	for i := 0; i < len(css); {
		if i+1 < len(css) && css[i] == '/' && css[i+1] == '*' {
			end := strings.Index(css[i+2:], "*/")
			if end < 0 {
				break
			}
			i += end + 4
			continue
		}
		out.WriteByte(css[i])
		i++
	}
	return out.String()
}

func isStructural(r rune) bool {
	switch r {
	case '{', '}', ':', ';', ',', '>', '(', ')':
		return true
	}
	return false
}
