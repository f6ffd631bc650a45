package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/dramac-main/dramac-cms-sub001/internal/pages"
)

// homePriority applies to the site root; every other page gets pagePriority.
const (
	homePriority = "1.0"
	pagePriority = "0.8"
)

func buildSitemap(routes *routeBuilder, sitePages []*pages.Page, fallback time.Time) string {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	seen := map[string]struct{}{}
	for _, page := range sitePages {
		if page == nil {
			continue
		}
		location := routes.PageURL(page.Route())
		if _, ok := seen[location]; ok {
			continue
		}
		seen[location] = struct{}{}

		lastMod := fallback
		if page.UpdatedAt != nil && !page.UpdatedAt.IsZero() {
			lastMod = *page.UpdatedAt
		}

		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", location))
		builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", lastMod.Format("2006-01-02")))
		builder.WriteString(fmt.Sprintf("    <priority>%s</priority>\n", pagePriorityFor(page.Slug)))
		builder.WriteString("  </url>\n")
	}

	builder.WriteString(`</urlset>` + "\n")
	return builder.String()
}

func pagePriorityFor(slug string) string {
	switch strings.TrimSpace(strings.ToLower(slug)) {
	case "", "home":
		return homePriority
	}
	return pagePriority
}

func buildRobots(routes *routeBuilder, includeSitemap bool) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	if includeSitemap {
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("Sitemap: %s\n", routes.SitemapURL()))
	}
	return builder.String()
}
