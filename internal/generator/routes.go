package generator

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	routeGroupSite = "site"
	routePage      = "page"
)

// routeBuilder resolves canonical page URLs through a configured route
// manager, falling back to plain concatenation when resolution fails.
type routeBuilder struct {
	manager *urlkit.RouteManager
	base    string
}

func newRouteBuilder(baseURL string) *routeBuilder {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	builder := &routeBuilder{base: base}
	if base == "" {
		return builder
	}
	builder.manager = urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    routeGroupSite,
				BaseURL: base,
				Paths: map[string]string{
					routePage: "/:slug",
				},
			},
		},
	})
	return builder
}

// PageURL returns the canonical URL for a page route.
func (r *routeBuilder) PageURL(route string) string {
	trimmed := strings.Trim(strings.TrimSpace(route), "/")
	fallback := r.base + "/" + trimmed

	if r.manager == nil || trimmed == "" || strings.Contains(trimmed, "/") {
		return fallback
	}
	url, err := buildRouteURL(r.manager, trimmed)
	if err != nil {
		return fallback
	}
	return url
}

// SitemapURL points at the emitted sitemap relative to the site base.
func (r *routeBuilder) SitemapURL() string {
	return r.base + "/sitemap.xml"
}

func buildRouteURL(manager *urlkit.RouteManager, slugValue string) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator: route resolution panic: %v", rec)
		}
	}()
	group := manager.Group(routeGroupSite)
	url, err = group.Builder(routePage).WithParam("slug", slugValue).Build()
	return url, err
}
