package render

import "strings"

// MinifyHTML removes comments and whitespace-only runs between tags. Text
// nodes with visible content are left untouched, so a tolerant re-parse sees
// the same text before and after. Output is never longer than input.
func MinifyHTML(markup string) string {
	stripped := stripHTMLComments(markup)

	var out strings.Builder
	out.Grow(len(stripped))
	i := 0
	for i < len(stripped) {
		c := stripped[i]
		out.WriteByte(c)
		i++
		if c != '>' {
			continue
		}
		// Drop the gap to the next tag when it is whitespace-only.
		j := i
		for j < len(stripped) && isSpaceByte(stripped[j]) {
			j++
		}
		if j >= len(stripped) || stripped[j] == '<' {
			i = j
		}
	}

	minified := out.String()
	if len(minified) > len(markup) {
		return markup
	}
	return minified
}

func stripHTMLComments(markup string) string {
	var out strings.Builder
	out.Grow(len(markup))
	for i := 0; i < len(markup); {
		if strings.HasPrefix(markup[i:], "<!--") {
			end := strings.Index(markup[i+4:], "-->")
			if end < 0 {
				break
			}
			i += end + 7
			continue
		}
		out.WriteByte(markup[i])
		i++
	}
	return out.String()
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
