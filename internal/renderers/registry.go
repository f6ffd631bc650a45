package renderers

import (
	"sort"
	"strings"
	"sync"

	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

// Registry is the thread-safe in-memory implementation of
// interfaces.RendererRegistry. Component types are matched case-insensitively.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]interfaces.ComponentRenderer
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]interfaces.ComponentRenderer),
	}
}

// Register stores a renderer if the type name is not taken.
func (r *Registry) Register(componentType string, renderer interfaces.ComponentRenderer) error {
	name := strings.ToLower(strings.TrimSpace(componentType))
	if name == "" || renderer == nil {
		return ErrInvalidRenderer
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return ErrDuplicateRenderer
	}
	r.entries[name] = renderer
	return nil
}

// Get returns the stored renderer.
func (r *Registry) Get(componentType string) (interfaces.ComponentRenderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.entries[strings.ToLower(strings.TrimSpace(componentType))]
	return renderer, ok
}

// List returns all registered type names in order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Remove deletes the renderer if it exists.
func (r *Registry) Remove(componentType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, strings.ToLower(strings.TrimSpace(componentType)))
}

// Ensure Registry implements interfaces.RendererRegistry.
var _ interfaces.RendererRegistry = (*Registry)(nil)
