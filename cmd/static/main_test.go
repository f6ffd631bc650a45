package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunBuildWritesArtifacts(t *testing.T) {
	contentDir := t.TempDir()
	outputDir := t.TempDir()

	page := `---
title: Home
slug: home
heading: Welcome
---
This site is generated ahead of time.
`
	if err := os.WriteFile(filepath.Join(contentDir, "home.md"), []byte(page), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := runBuild([]string{
		"-content-dir", contentDir,
		"-output-dir", outputDir,
		"-base-url", "https://example.com",
		"-log-level", "error",
	})
	if err != nil {
		t.Fatalf("runBuild: %v", err)
	}

	for _, name := range []string{
		filepath.Join("home", "index.html"),
		filepath.Join("home", "styles.css"),
		filepath.Join("home", "asset-manifest.json"),
		"sitemap.xml",
		"robots.txt",
	} {
		if _, statErr := os.Stat(filepath.Join(outputDir, name)); statErr != nil {
			t.Fatalf("expected artifact %s: %v", name, statErr)
		}
	}
}

func TestRunBuildFailsWithoutPages(t *testing.T) {
	if err := runBuild([]string{"-content-dir", t.TempDir(), "-output-dir", t.TempDir()}); err == nil {
		t.Fatalf("expected error when the content directory holds no pages")
	}
}
