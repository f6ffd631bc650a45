package pages

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Zone is a named, ordered list of child component identifiers belonging to a
// container. A zone is conceptually a typed array, never a single slot.
type Zone struct {
	ComponentIDs []string `json:"component_ids"`
}

// Page is one routable document composed of a tree of component instances.
// The slug determines the output path and the sitemap priority. Pages are
// created and edited elsewhere; the build pipeline only reads them.
type Page struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	RootZone    Zone       `json:"root_zone"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Route returns the path segment the page's artifacts are emitted under,
// falling back to the page ID when no slug is set.
func (p *Page) Route() string {
	if p == nil {
		return ""
	}
	if slug := strings.TrimSpace(p.Slug); slug != "" {
		return slug
	}
	return p.ID.String()
}

// ComponentInstance captures one configured occurrence of a component type.
// Props holds an arbitrary nested bag of scalars, arrays, and objects; Zones
// holds named ordered child-id lists for container components. Containment
// among the instances of one page forms a tree.
type ComponentInstance struct {
	ID    string          `json:"id"`
	Type  string          `json:"type"`
	Props map[string]any  `json:"props,omitempty"`
	Zones map[string]Zone `json:"zones,omitempty"`
}

// ByID indexes component instances by identifier. Later duplicates win, which
// matches how the editor resolves conflicting IDs.
func ByID(components []*ComponentInstance) map[string]*ComponentInstance {
	index := make(map[string]*ComponentInstance, len(components))
	for _, component := range components {
		if component == nil || strings.TrimSpace(component.ID) == "" {
			continue
		}
		index[component.ID] = component
	}
	return index
}
