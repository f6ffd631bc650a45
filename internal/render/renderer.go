package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/dramac-main/dramac-cms-sub001/internal/pages"
	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

// Options controls a single static render pass.
type Options struct {
	// IncludeDataAttributes annotates each root node with its component id.
	// Intended for development builds only.
	IncludeDataAttributes bool
	// Minify strips comments and inter-tag whitespace from the final markup.
	Minify bool
	// BaseURL and Mode flow into the renderer context so component renderers
	// can resolve relative links consistently.
	BaseURL string
	Mode    string
	PageID  string
}

// StaticHTML renders the components reachable from rootIDs into markup.
// Children render before their parents so container renderers always receive
// finished child markup. A component id that resolves to no instance, a type
// with no registered renderer, and a repeated id in one walk are all hard
// errors naming the offending component.
func StaticHTML(components []*pages.ComponentInstance, rootIDs []string, registry interfaces.RendererRegistry, options Options) (string, error) {
	if registry == nil {
		return "", fmt.Errorf("render: renderer registry is required")
	}
	index := pages.ByID(components)
	ctx := interfaces.RenderContext{
		PageID:  options.PageID,
		Mode:    options.Mode,
		BaseURL: options.BaseURL,
	}

	visited := map[string]bool{}
	fragments := make([]string, 0, len(rootIDs))
	for _, rootID := range rootIDs {
		markup, err := renderComponent(rootID, index, registry, ctx, visited)
		if err != nil {
			return "", err
		}
		if options.IncludeDataAttributes {
			markup = annotateRoot(markup, rootID)
		}
		fragments = append(fragments, markup)
	}

	document := strings.Join(fragments, "\n")
	if options.Minify {
		document = MinifyHTML(document)
	}
	return document, nil
}

func renderComponent(id string, index map[string]*pages.ComponentInstance, registry interfaces.RendererRegistry, ctx interfaces.RenderContext, visited map[string]bool) (string, error) {
	if visited[id] {
		return "", fmt.Errorf("%w: component %s", ErrCyclicContainment, id)
	}
	visited[id] = true

	component, ok := index[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrComponentNotFound, id)
	}

	children := map[string]string{}
	for zoneName, zone := range component.Zones {
		var zoneMarkup strings.Builder
		for _, childID := range zone.ComponentIDs {
			childHTML, err := renderComponent(childID, index, registry, ctx, visited)
			if err != nil {
				return "", err
			}
			zoneMarkup.WriteString(childHTML)
		}
		children[zoneName] = zoneMarkup.String()
	}

	renderer, found := registry.Get(component.Type)
	if !found {
		return "", fmt.Errorf("%w: type %q (component %s)", ErrRendererMissing, component.Type, id)
	}

	markup, err := renderer(component.Props, children, ctx)
	if err != nil {
		return "", fmt.Errorf("render: component %s: %w", id, err)
	}
	return markup, nil
}

// annotateRoot injects a data-component-id attribute into the first start
// tag of the fragment. Fragments that do not begin with an element are left
// untouched.
func annotateRoot(markup, componentID string) string {
	start := strings.Index(markup, "<")
	if start < 0 || strings.HasPrefix(markup[start:], "<!") {
		return markup
	}
	end := start + 1
	for end < len(markup) {
		c := markup[end]
		if c == ' ' || c == '>' || c == '/' {
			break
		}
		end++
	}
	if end >= len(markup) || end == start+1 {
		return markup
	}
	return markup[:end] + fmt.Sprintf(" data-component-id=\"%s\"", html.EscapeString(componentID)) + markup[end:]
}
