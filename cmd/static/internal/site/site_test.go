package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/dramac-main/dramac-cms-sub001/internal/identity"
)

func writeContent(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadParsesFrontmatterAndBody(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "about.md", `---
title: About Us
description: Who we are
heading: About
updated: 2025-12-24T10:00:00Z
---
We build things.
`)

	site, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(site) != 1 {
		t.Fatalf("expected 1 page, got %d", len(site))
	}

	page := site[0].Page
	if page.Slug != "about" {
		t.Fatalf("expected slug about, got %q", page.Slug)
	}
	if page.Title != "About Us" {
		t.Fatalf("expected title, got %q", page.Title)
	}
	if page.Description != "Who we are" {
		t.Fatalf("expected description, got %q", page.Description)
	}
	if page.UpdatedAt == nil || page.UpdatedAt.Format("2006-01-02") != "2025-12-24" {
		t.Fatalf("expected updated date, got %v", page.UpdatedAt)
	}
	if page.ID != identity.PageUUID("about") {
		t.Fatalf("expected deterministic page id")
	}

	components := site[0].Components
	if len(components) != 2 {
		t.Fatalf("expected heading and body components, got %d", len(components))
	}
	if components[0].Type != "heading" || components[0].Props["text"] != "About" {
		t.Fatalf("unexpected heading component: %+v", components[0])
	}
	if components[1].Type != "markdown" || components[1].Props["content"] != "We build things." {
		t.Fatalf("unexpected body component: %+v", components[1])
	}
	if len(page.RootZone.ComponentIDs) != 2 {
		t.Fatalf("expected both components in the root zone")
	}
}

func TestLoadSlugFallbacks(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "index.md", "---\ntitle: Home\n---\nHello.\n")
	writeContent(t, dir, "docs/intro.md", "---\ntitle: Intro\n---\nStart here.\n")

	site, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(site) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(site))
	}

	slugs := map[string]bool{}
	for _, entry := range site {
		slugs[entry.Page.Slug] = true
		if entry.Page.ID == uuid.Nil {
			t.Fatalf("page %q got nil id", entry.Page.Slug)
		}
	}
	if !slugs["home"] {
		t.Fatalf("expected index.md to map to the home slug, got %v", slugs)
	}
	if !slugs["docs/intro"] {
		t.Fatalf("expected nested path slug, got %v", slugs)
	}
}

func TestLoadNormalizesPathDerivedSlugs(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "About Page.md", "---\ntitle: About\n---\nWho we are.\n")

	site, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if site[0].Page.Slug != "about-page" {
		t.Fatalf("expected normalized slug about-page, got %q", site[0].Page.Slug)
	}
}

func TestLoadExplicitSlugWins(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "whatever.md", "---\ntitle: Pricing\nslug: pricing\n---\nPlans.\n")

	site, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if site[0].Page.Slug != "pricing" {
		t.Fatalf("expected frontmatter slug to win, got %q", site[0].Page.Slug)
	}
}

func TestLoadRejectsEmptyDir(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty content directory")
	}
}

func TestLoadStylesFlowToHeading(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "home.md", `---
title: Home
slug: home
heading: Welcome
styles:
  color: "#1a1a2e"
  fontSize: 48
---
Body.
`)

	site, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	styles, ok := site[0].Components[0].Props["styles"].(map[string]any)
	if !ok {
		t.Fatalf("expected styles map on heading props")
	}
	if styles["color"] != "#1a1a2e" {
		t.Fatalf("expected color style, got %v", styles["color"])
	}
}
