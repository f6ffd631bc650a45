package css

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dramac-main/dramac-cms-sub001/internal/pages"
)

// Options configures stylesheet generation for one page.
type Options struct {
	// ThemeVariables are emitted as custom properties in a :root block ahead
	// of component rules. Keys may be raw token names or full --var names.
	ThemeVariables map[string]string
}

// Named breakpoints resolve to desktop-first max-width media queries.
var namedBreakpoints = map[string]int{
	"wide":    1440,
	"desktop": 1280,
	"laptop":  1024,
	"tablet":  768,
	"mobile":  640,
}

// unitlessProperties never receive a px suffix for numeric values.
var unitlessProperties = map[string]bool{
	"opacity":     true,
	"z-index":     true,
	"font-weight": true,
	"line-height": true,
	"flex":        true,
	"flex-grow":   true,
	"flex-shrink": true,
	"order":       true,
}

// GeneratePageCSS produces one stylesheet for the given component list: an
// optional :root custom-property block, then one rule set per component that
// declares styles, in input order. Within a component the base rule comes
// first, then the hover rule, then media queries widest-first. Output is
// deterministic for identical input.
func GeneratePageCSS(components []*pages.ComponentInstance, options Options) string {
	var out strings.Builder

	if block := RootVariablesBlock(options.ThemeVariables); block != "" {
		out.WriteString(block)
		out.WriteString("\n")
	}

	for _, component := range components {
		if component == nil {
			continue
		}
		styles, ok := component.Props["styles"].(map[string]any)
		if !ok || len(styles) == 0 {
			continue
		}
		writeComponentRules(&out, ClassName(component.ID), styles)
	}

	return out.String()
}

// ClassName derives the deterministic selector class for a component id.
// Ids are unique within a page so the mapping is collision-free.
func ClassName(componentID string) string {
	var cleaned strings.Builder
	for _, r := range componentID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			cleaned.WriteRune(r)
		default:
			cleaned.WriteRune('-')
		}
	}
	return "c-" + cleaned.String()
}

func writeComponentRules(out *strings.Builder, className string, styles map[string]any) {
	base := map[string]any{}
	var hover map[string]any
	var responsive map[string]any

	for key, value := range styles {
		switch key {
		case "hover":
			hover, _ = value.(map[string]any)
		case "responsive":
			responsive, _ = value.(map[string]any)
		default:
			base[key] = value
		}
	}

	if len(base) > 0 {
		writeRule(out, "."+className, base)
	}
	if len(hover) > 0 {
		writeRule(out, "."+className+":hover", hover)
	}
	for _, breakpoint := range sortedBreakpoints(responsive) {
		declarations, ok := responsive[breakpoint.name].(map[string]any)
		if !ok || len(declarations) == 0 {
			continue
		}
		fmt.Fprintf(out, "@media (max-width: %dpx) {\n", breakpoint.width)
		writeIndentedRule(out, "."+className, declarations)
		out.WriteString("}\n")
	}
}

func writeRule(out *strings.Builder, selector string, declarations map[string]any) {
	out.WriteString(selector)
	out.WriteString(" {\n")
	for _, property := range sortedKeys(declarations) {
		value := formatValue(kebabCase(property), declarations[property])
		if value == "" {
			continue
		}
		fmt.Fprintf(out, "  %s: %s;\n", kebabCase(property), value)
	}
	out.WriteString("}\n")
}

func writeIndentedRule(out *strings.Builder, selector string, declarations map[string]any) {
	out.WriteString("  ")
	out.WriteString(selector)
	out.WriteString(" {\n")
	for _, property := range sortedKeys(declarations) {
		value := formatValue(kebabCase(property), declarations[property])
		if value == "" {
			continue
		}
		fmt.Fprintf(out, "    %s: %s;\n", kebabCase(property), value)
	}
	out.WriteString("  }\n")
}

// RootVariablesBlock renders theme variables as a :root rule with sorted
// keys. Keys without the custom-property prefix are normalized.
func RootVariablesBlock(variables map[string]string) string {
	if len(variables) == 0 {
		return ""
	}
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)

	var out strings.Builder
	out.WriteString(":root {\n")
	for _, name := range names {
		property := name
		if !strings.HasPrefix(property, "--") {
			property = "--" + strings.TrimPrefix(property, "-")
		}
		fmt.Fprintf(&out, "  %s: %s;\n", property, variables[name])
	}
	out.WriteString("}\n")
	return out.String()
}

type breakpoint struct {
	name  string
	width int
}

// sortedBreakpoints orders responsive keys widest-first so narrower media
// queries override wider ones under the desktop-first cascade.
func sortedBreakpoints(responsive map[string]any) []breakpoint {
	if len(responsive) == 0 {
		return nil
	}
	breakpoints := make([]breakpoint, 0, len(responsive))
	for name := range responsive {
		width, ok := breakpointWidth(name)
		if !ok {
			continue
		}
		breakpoints = append(breakpoints, breakpoint{name: name, width: width})
	}
	sort.Slice(breakpoints, func(i, j int) bool {
		if breakpoints[i].width != breakpoints[j].width {
			return breakpoints[i].width > breakpoints[j].width
		}
		return breakpoints[i].name < breakpoints[j].name
	})
	return breakpoints
}

func breakpointWidth(name string) (int, bool) {
	if width, ok := namedBreakpoints[strings.ToLower(name)]; ok {
		return width, true
	}
	width := 0
	for _, r := range name {
		if r < '0' || r > '9' {
			return 0, false
		}
		width = width*10 + int(r-'0')
	}
	if width <= 0 {
		return 0, false
	}
	return width, true
}

func sortedKeys(declarations map[string]any) []string {
	keys := make([]string, 0, len(declarations))
	for key := range declarations {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// kebabCase converts camelCase property names to their CSS spelling.
func kebabCase(property string) string {
	var out strings.Builder
	for _, r := range property {
		if r >= 'A' && r <= 'Z' {
			out.WriteByte('-')
			out.WriteRune(r + ('a' - 'A'))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

func formatValue(property string, value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case int:
		return numericValue(property, float64(typed))
	case int64:
		return numericValue(property, float64(typed))
	case float64:
		return numericValue(property, typed)
	case bool:
		if typed {
			return "initial"
		}
		return "none"
	default:
		return ""
	}
}

func numericValue(property string, value float64) string {
	formatted := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", value), "0"), ".")
	if formatted == "" || formatted == "-" {
		formatted = "0"
	}
	if unitlessProperties[property] || value == 0 {
		return formatted
	}
	return formatted + "px"
}
