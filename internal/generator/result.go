package generator

import (
	"time"

	"github.com/dramac-main/dramac-cms-sub001/internal/assets"
)

// BuildFileType labels an emitted artifact.
type BuildFileType string

const (
	FileHTML  BuildFileType = "html"
	FileCSS   BuildFileType = "css"
	FileJS    BuildFileType = "js"
	FileAsset BuildFileType = "asset"
	FileJSON  BuildFileType = "json"
	FileOther BuildFileType = "other"
)

// BuildFile is one emitted artifact with its path relative to the site root.
type BuildFile struct {
	Path     string        `json:"path"`
	Type     BuildFileType `json:"type"`
	Size     int64         `json:"size"`
	Content  []byte        `json:"content,omitempty"`
	Minified bool          `json:"minified,omitempty"`
}

// BuildStats aggregates counts and size accounting for a build.
type BuildStats struct {
	PagesBuilt         int     `json:"pagesBuilt"`
	ComponentsRendered int     `json:"componentsRendered"`
	AssetsProcessed    int     `json:"assetsProcessed"`
	TotalFiles         int     `json:"totalFiles"`
	TotalSize          int64   `json:"totalSize"`
	HTMLSize           int64   `json:"htmlSize"`
	CSSSize            int64   `json:"cssSize"`
	JSSize             int64   `json:"jsSize"`
	OriginalSize       int64   `json:"originalSize"`
	SavingsPercent     float64 `json:"savingsPercent"`
}

// BuildResult reports the outcome of one page or site build. Build
// operations always return a result; failures are reported through Success
// and Error rather than raised past the call boundary. AssetManifest is set
// on successful page builds.
type BuildResult struct {
	Success       bool             `json:"success"`
	Error         string           `json:"error,omitempty"`
	Files         []BuildFile      `json:"files"`
	AssetManifest *assets.Manifest `json:"assetManifest,omitempty"`
	Stats         BuildStats       `json:"stats"`
	Duration      time.Duration    `json:"duration"`
}

func (r *BuildResult) addFile(file BuildFile) {
	r.Files = append(r.Files, file)
	r.Stats.TotalFiles++
	r.Stats.TotalSize += file.Size
	switch file.Type {
	case FileHTML:
		r.Stats.HTMLSize += file.Size
	case FileCSS:
		r.Stats.CSSSize += file.Size
	case FileJS:
		r.Stats.JSSize += file.Size
	}
}

// mergeStats folds one page's stats into a site aggregate. SavingsPercent is
// recomputed by the caller from the summed totals.
func (r *BuildResult) mergeStats(page BuildStats) {
	r.Stats.PagesBuilt += page.PagesBuilt
	r.Stats.ComponentsRendered += page.ComponentsRendered
	r.Stats.AssetsProcessed += page.AssetsProcessed
	r.Stats.TotalFiles += page.TotalFiles
	r.Stats.TotalSize += page.TotalSize
	r.Stats.HTMLSize += page.HTMLSize
	r.Stats.CSSSize += page.CSSSize
	r.Stats.JSSize += page.JSSize
	r.Stats.OriginalSize += page.OriginalSize
}
