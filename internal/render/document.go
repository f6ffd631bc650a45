package render

import (
	"fmt"
	"html"
	"strings"
)

// DocumentSpec describes one complete HTML page to assemble.
type DocumentSpec struct {
	Lang         string
	Title        string
	Description  string
	CanonicalURL string
	HeadContent  string
	BodyHTML     string
	BodyScripts  string

	// CriticalCSS is inlined into a <style> element when InlineCriticalCSS
	// is set; otherwise StylesheetHref is linked. When both inlining and a
	// stylesheet href are present the external sheet loads deferred via a
	// preload link with a noscript fallback.
	CriticalCSS       string
	InlineCriticalCSS bool
	StylesheetHref    string
}

// Document assembles a full HTML document. Title and description are HTML
// escaped; HeadContent, BodyHTML, and BodyScripts are trusted markup injected
// verbatim.
func Document(spec DocumentSpec) string {
	lang := strings.TrimSpace(spec.Lang)
	if lang == "" {
		lang = "en"
	}

	var out strings.Builder
	out.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&out, "<html lang=\"%s\">\n", lang)
	out.WriteString("<head>\n")
	out.WriteString("<meta charset=\"utf-8\">\n")
	out.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&out, "<title>%s</title>\n", html.EscapeString(spec.Title))
	if strings.TrimSpace(spec.Description) != "" {
		fmt.Fprintf(&out, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(spec.Description))
	}
	if strings.TrimSpace(spec.CanonicalURL) != "" {
		fmt.Fprintf(&out, "<link rel=\"canonical\" href=\"%s\">\n", html.EscapeString(spec.CanonicalURL))
	}
	if spec.HeadContent != "" {
		out.WriteString(spec.HeadContent)
		out.WriteString("\n")
	}
	writeStyles(&out, spec)
	out.WriteString("</head>\n")
	out.WriteString("<body>\n")
	if spec.BodyHTML != "" {
		out.WriteString(spec.BodyHTML)
		out.WriteString("\n")
	}
	if spec.BodyScripts != "" {
		out.WriteString(spec.BodyScripts)
		out.WriteString("\n")
	}
	out.WriteString("</body>\n")
	out.WriteString("</html>\n")
	return out.String()
}

func writeStyles(out *strings.Builder, spec DocumentSpec) {
	href := html.EscapeString(strings.TrimSpace(spec.StylesheetHref))

	if spec.InlineCriticalCSS && spec.CriticalCSS != "" {
		fmt.Fprintf(out, "<style>%s</style>\n", spec.CriticalCSS)
		if href != "" {
			fmt.Fprintf(out, "<link rel=\"preload\" href=\"%s\" as=\"style\" onload=\"this.onload=null;this.rel='stylesheet'\">\n", href)
			fmt.Fprintf(out, "<noscript><link rel=\"stylesheet\" href=\"%s\"></noscript>\n", href)
		}
		return
	}
	if href != "" {
		fmt.Fprintf(out, "<link rel=\"stylesheet\" href=\"%s\">\n", href)
	}
}
