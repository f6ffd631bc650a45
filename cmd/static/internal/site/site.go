// Package site loads page definitions from a directory of markdown files so
// the static builder can run without a database. Each file carries YAML
// frontmatter for page metadata and a markdown body rendered as content.
package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	goslug "github.com/goliatone/go-slug"

	"github.com/dramac-main/dramac-cms-sub001/internal/generator"
	"github.com/dramac-main/dramac-cms-sub001/internal/identity"
	"github.com/dramac-main/dramac-cms-sub001/internal/pages"
)

type pageMeta struct {
	Title       string         `yaml:"title"`
	Slug        string         `yaml:"slug"`
	Description string         `yaml:"description"`
	Updated     time.Time      `yaml:"updated"`
	Heading     string         `yaml:"heading"`
	Styles      map[string]any `yaml:"styles"`
}

// Load reads every markdown file beneath dir and converts it into a site
// page. Files are processed in path order so builds are deterministic.
func Load(dir string) ([]generator.SitePage, error) {
	root := filepath.Clean(strings.TrimSpace(dir))
	if root == "" || root == "." {
		return nil, fmt.Errorf("site: content directory required")
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("site: scan %s: %w", root, err)
	}
	sort.Strings(paths)

	site := make([]generator.SitePage, 0, len(paths))
	for _, path := range paths {
		page, err := loadPage(root, path)
		if err != nil {
			return nil, err
		}
		site = append(site, page)
	}
	return site, nil
}

func loadPage(root, path string) (generator.SitePage, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return generator.SitePage{}, fmt.Errorf("site: read %s: %w", path, err)
	}

	var meta pageMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return generator.SitePage{}, fmt.Errorf("site: parse frontmatter in %s: %w", path, err)
	}

	slug := strings.TrimSpace(meta.Slug)
	if slug == "" {
		slug = slugFromPath(root, path)
	}
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = slug
	}

	page := &pages.Page{
		ID:          identity.PageUUID(slug),
		Slug:        slug,
		Title:       title,
		Description: strings.TrimSpace(meta.Description),
	}
	if !meta.Updated.IsZero() {
		updated := meta.Updated
		page.UpdatedAt = &updated
	}

	components := make([]*pages.ComponentInstance, 0, 2)
	if heading := strings.TrimSpace(meta.Heading); heading != "" {
		props := map[string]any{
			"text":  heading,
			"level": 1,
		}
		if len(meta.Styles) > 0 {
			props["styles"] = meta.Styles
		}
		components = append(components, &pages.ComponentInstance{
			ID:    slug + "-heading",
			Type:  "heading",
			Props: props,
		})
	}
	if content := strings.TrimSpace(string(body)); content != "" {
		components = append(components, &pages.ComponentInstance{
			ID:   slug + "-body",
			Type: "markdown",
			Props: map[string]any{
				"content": content,
			},
		})
	}

	rootIDs := make([]string, 0, len(components))
	for _, component := range components {
		rootIDs = append(rootIDs, component.ID)
	}
	page.RootZone = pages.Zone{ComponentIDs: rootIDs}

	return generator.SitePage{Page: page, Components: components}, nil
}

// slugFromPath derives a slug from the file location, normalizing each path
// segment so the output directory, canonical URL, and sitemap entry agree.
func slugFromPath(root, path string) string {
	relative, err := filepath.Rel(root, path)
	if err != nil {
		relative = filepath.Base(path)
	}
	trimmed := strings.TrimSuffix(filepath.ToSlash(relative), ".md")
	trimmed = strings.TrimSuffix(trimmed, "/index")
	if trimmed == "index" {
		return "home"
	}

	segments := strings.Split(trimmed, "/")
	normalized := make([]string, 0, len(segments))
	for _, segment := range segments {
		cleaned, err := goslug.Normalize(segment)
		if err != nil || cleaned == "" {
			cleaned = strings.ToLower(segment)
		}
		normalized = append(normalized, cleaned)
	}
	return strings.Join(normalized, "/")
}
