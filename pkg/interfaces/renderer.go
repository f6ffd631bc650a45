package interfaces

// RenderContext carries build-scoped information into component renderers.
type RenderContext struct {
	// PageID identifies the page being rendered.
	PageID string
	// Mode is the active build mode (production, development, preview).
	Mode string
	// BaseURL is the configured site base URL without a trailing slash.
	BaseURL string
}

// ComponentRenderer produces markup for one configured component instance.
// Children contains the already rendered markup of each declared zone, keyed
// by zone name, so container renderers always wrap rendered child output.
type ComponentRenderer func(props map[string]any, children map[string]string, ctx RenderContext) (string, error)

// RendererRegistry maps a component type to its rendering capability. The
// build core treats the registry as a read-only lookup service.
type RendererRegistry interface {
	Get(componentType string) (ComponentRenderer, bool)
	List() []string
}
