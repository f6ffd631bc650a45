package renderers

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

// RegisterBuiltIns installs the core component renderers shipped with the
// builder: text, media, and container primitives that cover the default
// editor palette. Hosts register additional types on top.
func RegisterBuiltIns(registry *Registry) error {
	builtins := map[string]interfaces.ComponentRenderer{
		"heading":  renderHeading,
		"markdown": renderMarkdown,
		"image":    renderImage,
		"video":    renderVideo,
		"button":   renderButton,
		"section":  renderSection,
		"columns":  renderColumns,
		"spacer":   renderSpacer,
	}
	for name, renderer := range builtins {
		if err := registry.Register(name, renderer); err != nil {
			return fmt.Errorf("renderers: register builtin %s: %w", name, err)
		}
	}
	return nil
}

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

func renderHeading(props map[string]any, _ map[string]string, _ interfaces.RenderContext) (string, error) {
	level := intProp(props, "level", 2)
	if level < 1 || level > 6 {
		level = 2
	}
	text := html.EscapeString(stringProp(props, "text"))
	return fmt.Sprintf("<h%d>%s</h%d>", level, text, level), nil
}

func renderMarkdown(props map[string]any, _ map[string]string, _ interfaces.RenderContext) (string, error) {
	source := stringProp(props, "content")
	if source == "" {
		source = stringProp(props, "text")
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("renderers: markdown convert: %w", err)
	}
	return `<div class="rich-text">` + buf.String() + `</div>`, nil
}

func renderImage(props map[string]any, _ map[string]string, _ interfaces.RenderContext) (string, error) {
	src := stringProp(props, "src")
	alt := html.EscapeString(stringProp(props, "alt"))

	var attrs strings.Builder
	attrs.WriteString(` src="` + html.EscapeString(src) + `" alt="` + alt + `"`)
	if width := intProp(props, "width", 0); width > 0 {
		attrs.WriteString(` width="` + strconv.Itoa(width) + `"`)
	}
	if height := intProp(props, "height", 0); height > 0 {
		attrs.WriteString(` height="` + strconv.Itoa(height) + `"`)
	}
	attrs.WriteString(` loading="lazy"`)

	img := "<img" + attrs.String() + ">"
	sources := stringSliceProp(props, "sources")
	if len(sources) == 0 {
		return img, nil
	}

	var picture strings.Builder
	picture.WriteString("<picture>")
	for _, source := range sources {
		picture.WriteString(`<source srcset="` + html.EscapeString(source) + `" type="` + sourceMIME(source) + `">`)
	}
	picture.WriteString(img)
	picture.WriteString("</picture>")
	return picture.String(), nil
}

func renderVideo(props map[string]any, _ map[string]string, _ interfaces.RenderContext) (string, error) {
	src := html.EscapeString(stringProp(props, "src"))
	var attrs strings.Builder
	attrs.WriteString(` src="` + src + `" controls`)
	if poster := stringProp(props, "poster"); poster != "" {
		attrs.WriteString(` poster="` + html.EscapeString(poster) + `"`)
	}
	if boolProp(props, "autoplay") {
		attrs.WriteString(` autoplay muted`)
	}
	if boolProp(props, "loop") {
		attrs.WriteString(` loop`)
	}
	return "<video" + attrs.String() + "></video>", nil
}

func renderButton(props map[string]any, _ map[string]string, ctx interfaces.RenderContext) (string, error) {
	href := stringProp(props, "href")
	if href == "" {
		href = stringProp(props, "link")
	}
	if href != "" && strings.HasPrefix(href, "/") && ctx.BaseURL != "" {
		href = ctx.BaseURL + href
	}
	label := html.EscapeString(stringProp(props, "label"))
	variant := stringProp(props, "variant")
	if variant == "" {
		variant = "primary"
	}
	return fmt.Sprintf(`<a class="btn btn--%s" href="%s">%s</a>`, html.EscapeString(variant), html.EscapeString(href), label), nil
}

func renderSection(props map[string]any, children map[string]string, _ interfaces.RenderContext) (string, error) {
	inner := children["content"]
	tag := stringProp(props, "tag")
	switch tag {
	case "section", "article", "aside", "header", "footer", "main", "div":
	default:
		tag = "section"
	}
	return "<" + tag + `><div class="section__inner">` + inner + "</div></" + tag + ">", nil
}

func renderColumns(_ map[string]any, children map[string]string, _ interfaces.RenderContext) (string, error) {
	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Strings(names)

	var out strings.Builder
	out.WriteString(`<div class="columns">`)
	for _, name := range names {
		out.WriteString(`<div class="columns__col">` + children[name] + `</div>`)
	}
	out.WriteString(`</div>`)
	return out.String(), nil
}

func renderSpacer(props map[string]any, _ map[string]string, _ interfaces.RenderContext) (string, error) {
	height := intProp(props, "height", 16)
	if height < 0 {
		height = 0
	}
	return fmt.Sprintf(`<div class="spacer" aria-hidden="true" style="height:%dpx"></div>`, height), nil
}

func sourceMIME(url string) string {
	lowered := strings.ToLower(url)
	switch {
	case strings.HasSuffix(lowered, ".webp"):
		return "image/webp"
	case strings.HasSuffix(lowered, ".avif"):
		return "image/avif"
	case strings.HasSuffix(lowered, ".png"):
		return "image/png"
	default:
		return "image/jpeg"
	}
}

func stringProp(props map[string]any, key string) string {
	if props == nil {
		return ""
	}
	if value, ok := props[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func stringSliceProp(props map[string]any, key string) []string {
	if props == nil {
		return nil
	}
	raw, ok := props[key].([]any)
	if !ok {
		if typed, ok := props[key].([]string); ok {
			return typed
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if str, ok := item.(string); ok && strings.TrimSpace(str) != "" {
			out = append(out, strings.TrimSpace(str))
		}
	}
	return out
}

func intProp(props map[string]any, key string, fallback int) int {
	if props == nil {
		return fallback
	}
	switch value := props[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolProp(props map[string]any, key string) bool {
	if props == nil {
		return false
	}
	switch value := props[key].(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(strings.TrimSpace(value), "true")
	}
	return false
}
