package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dramac-main/dramac-cms-sub001/internal/assets"
	"github.com/dramac-main/dramac-cms-sub001/internal/css"
	"github.com/dramac-main/dramac-cms-sub001/internal/logging"
	"github.com/dramac-main/dramac-cms-sub001/internal/pages"
	"github.com/dramac-main/dramac-cms-sub001/internal/render"
	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

var (
	ErrPageRequired     = errors.New("generator: page is required")
	ErrRegistryRequired = errors.New("generator: renderer registry is required")
)

// Mode selects the build profile. Production minifies and optimizes;
// development annotates markup for debugging; preview skips optimization
// while keeping production document structure.
type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
	ModePreview     Mode = "preview"
)

// Options carries the per-build configuration surface.
type Options struct {
	OutputDir         string
	Minify            bool
	OptimizeAssets    bool
	InlineCriticalCSS bool
	SourceMaps        bool
	BaseURL           string
	GenerateSitemap   bool
	GenerateRobots    bool
	HeadContent       string
	BodyScripts       string
	Mode              Mode
	DryRun            bool
}

// DefaultOptions mirrors the documented defaults of the build surface.
func DefaultOptions() Options {
	return Options{
		Minify:            true,
		OptimizeAssets:    true,
		InlineCriticalCSS: true,
		GenerateSitemap:   true,
		GenerateRobots:    true,
		Mode:              ModeProduction,
	}
}

// SitePage pairs one page with the component instances it references.
type SitePage struct {
	Page       *pages.Page
	Components []*pages.ComponentInstance
}

// Service describes the static build contract. Build operations never fail
// past their boundary; inspect BuildResult.Success.
type Service interface {
	BuildPage(ctx context.Context, page *pages.Page, components []*pages.ComponentInstance, opts Options) *BuildResult
	BuildSite(ctx context.Context, site []SitePage, opts Options) *BuildResult
	Clean(ctx context.Context) error
}

// Config captures service-level behaviour that is not part of the per-build
// option surface.
type Config struct {
	Optimize assets.OptimizeOptions
}

// Dependencies lists the collaborators required by the build service.
type Dependencies struct {
	Renderers interfaces.RendererRegistry
	Catalog   interfaces.FieldCatalog
	Store     interfaces.ArtifactStore
	Theme     *css.ThemeSource
	Logger    interfaces.Logger
}

// NewService wires a build service with the provided configuration and
// dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &service{
		cfg:       cfg,
		deps:      deps,
		logger:    logger,
		extractor: assets.NewExtractor(deps.Catalog, logger),
		optimizer: assets.NewOptimizer(cfg.Optimize, logger),
		now:       time.Now,
	}
}

type service struct {
	cfg       Config
	deps      Dependencies
	logger    interfaces.Logger
	extractor *assets.Extractor
	optimizer *assets.Optimizer
	now       func() time.Time
}

func (s *service) BuildPage(ctx context.Context, page *pages.Page, components []*pages.ComponentInstance, opts Options) *BuildResult {
	start := s.now()
	result := &BuildResult{Files: []BuildFile{}}

	err := s.buildPageGuarded(ctx, page, components, opts, result)
	result.Duration = s.now().Sub(start)
	if err != nil {
		result.Success = false
		result.Error = err.Error()
		s.logger.Error("page build failed", "page", pageIdentifier(page), "error", err)
		return result
	}

	result.Success = true
	s.logger.Info("page built",
		"page", pageIdentifier(page),
		"files", result.Stats.TotalFiles,
		"duration", result.Duration,
	)
	return result
}

// buildPageGuarded catches panics so callers always receive a BuildResult.
func (s *service) buildPageGuarded(ctx context.Context, page *pages.Page, components []*pages.ComponentInstance, opts Options, result *BuildResult) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator: build panic: %v", rec)
		}
	}()
	return s.buildPage(ctx, page, components, opts, result)
}

func (s *service) buildPage(ctx context.Context, page *pages.Page, components []*pages.ComponentInstance, opts Options, result *BuildResult) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if page == nil {
		return ErrPageRequired
	}
	if s.deps.Renderers == nil {
		return ErrRegistryRequired
	}

	production := opts.Mode == ModeProduction

	extracted := s.extractor.Extract(components)
	optimized := extracted
	if opts.OptimizeAssets && production {
		optimized = s.optimizer.Optimize(extracted)
	}

	rewritten := assets.RewriteURLs(components, optimized)

	themeVariables, err := s.themeVariables()
	if err != nil {
		return err
	}
	stylesheet := css.GeneratePageCSS(rewritten, css.Options{ThemeVariables: themeVariables})
	originalSize := int64(len(stylesheet))
	cssMinified := false
	if opts.Minify && production {
		stylesheet = css.Minify(stylesheet)
		cssMinified = true
	}
	critical := ""
	if opts.InlineCriticalCSS {
		critical = css.ExtractCritical(stylesheet)
	}

	body, err := render.StaticHTML(rewritten, page.RootZone.ComponentIDs, s.deps.Renderers, render.Options{
		IncludeDataAttributes: opts.Mode == ModeDevelopment,
		BaseURL:               opts.BaseURL,
		Mode:                  string(opts.Mode),
		PageID:                page.ID.String(),
	})
	if err != nil {
		return err
	}

	route := page.Route()
	dir := outputDir(route)
	routes := newRouteBuilder(opts.BaseURL)
	stylesHref := "/" + filePath(dir, "styles.css")

	document := render.Document(render.DocumentSpec{
		Title:             page.Title,
		Description:       page.Description,
		CanonicalURL:      routes.PageURL(route),
		HeadContent:       opts.HeadContent,
		BodyHTML:          body,
		BodyScripts:       opts.BodyScripts,
		CriticalCSS:       critical,
		InlineCriticalCSS: opts.InlineCriticalCSS,
		StylesheetHref:    stylesHref,
	})
	originalSize += int64(len(document))
	htmlMinified := false
	if opts.Minify && production {
		document = render.MinifyHTML(document)
		htmlMinified = true
	}

	manifest := assets.BuildManifest(optimized, s.now())
	encodedManifest, err := manifest.Encode()
	if err != nil {
		return fmt.Errorf("generator: encode asset manifest: %w", err)
	}

	result.addFile(BuildFile{
		Path:     filePath(dir, "styles.css"),
		Type:     FileCSS,
		Size:     int64(len(stylesheet)),
		Content:  []byte(stylesheet),
		Minified: cssMinified,
	})
	result.addFile(BuildFile{
		Path:     filePath(dir, "index.html"),
		Type:     FileHTML,
		Size:     int64(len(document)),
		Content:  []byte(document),
		Minified: htmlMinified,
	})
	result.addFile(BuildFile{
		Path:    filePath(dir, "asset-manifest.json"),
		Type:    FileJSON,
		Size:    int64(len(encodedManifest)),
		Content: encodedManifest,
	})

	result.AssetManifest = &manifest
	result.Stats.PagesBuilt = 1
	result.Stats.ComponentsRendered = countComponents(components)
	result.Stats.AssetsProcessed = len(optimized)
	result.Stats.OriginalSize = originalSize
	result.Stats.SavingsPercent = assets.SavingsPercent(originalSize, result.Stats.HTMLSize+result.Stats.CSSSize)

	if !opts.DryRun {
		if err := s.persist(ctx, dir, result.Files[len(result.Files)-3:]); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) BuildSite(ctx context.Context, site []SitePage, opts Options) *BuildResult {
	start := s.now()
	aggregate := &BuildResult{Success: true, Files: []BuildFile{}}

	builtPages := make([]*pages.Page, 0, len(site))
	for _, entry := range site {
		pageResult := s.BuildPage(ctx, entry.Page, entry.Components, opts)
		if !pageResult.Success {
			aggregate.Success = false
			aggregate.Error = fmt.Sprintf("Failed to build page %s: %s", pageIdentifier(entry.Page), pageResult.Error)
			break
		}
		aggregate.Files = append(aggregate.Files, pageResult.Files...)
		aggregate.mergeStats(pageResult.Stats)
		builtPages = append(builtPages, entry.Page)
	}

	if aggregate.Success {
		if err := s.appendSiteFiles(ctx, aggregate, builtPages, opts); err != nil {
			aggregate.Success = false
			aggregate.Error = err.Error()
		}
	}
	if aggregate.Success {
		aggregate.Stats.SavingsPercent = assets.SavingsPercent(aggregate.Stats.OriginalSize, aggregate.Stats.HTMLSize+aggregate.Stats.CSSSize)
	}

	aggregate.Duration = s.now().Sub(start)
	s.logger.Info("site build finished",
		"pages", len(builtPages),
		"success", aggregate.Success,
		"duration", aggregate.Duration,
	)
	return aggregate
}

func (s *service) appendSiteFiles(ctx context.Context, aggregate *BuildResult, builtPages []*pages.Page, opts Options) error {
	routes := newRouteBuilder(opts.BaseURL)
	siteFiles := make([]BuildFile, 0, 2)

	if opts.GenerateSitemap {
		sitemap := buildSitemap(routes, builtPages, s.now())
		file := BuildFile{
			Path:    "sitemap.xml",
			Type:    FileOther,
			Size:    int64(len(sitemap)),
			Content: []byte(sitemap),
		}
		aggregate.addFile(file)
		siteFiles = append(siteFiles, file)
	}
	if opts.GenerateRobots {
		robots := buildRobots(routes, opts.GenerateSitemap)
		file := BuildFile{
			Path:    "robots.txt",
			Type:    FileOther,
			Size:    int64(len(robots)),
			Content: []byte(robots),
		}
		aggregate.addFile(file)
		siteFiles = append(siteFiles, file)
	}

	if opts.DryRun || len(siteFiles) == 0 {
		return nil
	}
	return s.persist(ctx, "", siteFiles)
}

// Clean removes everything beneath the artifact store root.
func (s *service) Clean(ctx context.Context) error {
	if s.deps.Store == nil {
		return nil
	}
	return s.deps.Store.RemoveAll(ctx, ".")
}

func (s *service) themeVariables() (map[string]string, error) {
	if s.deps.Theme == nil {
		return nil, nil
	}
	variables, err := s.deps.Theme.Variables()
	if err != nil {
		return nil, fmt.Errorf("generator: resolve theme variables: %w", err)
	}
	return variables, nil
}

func (s *service) persist(ctx context.Context, dir string, files []BuildFile) error {
	if s.deps.Store == nil {
		return nil
	}
	if dir != "" {
		if err := s.deps.Store.EnsureDir(ctx, dir); err != nil {
			return err
		}
	}
	for _, file := range files {
		err := s.deps.Store.WriteFile(ctx, interfaces.WriteRequest{
			Path:        file.Path,
			Content:     bytes.NewReader(file.Content),
			Size:        file.Size,
			ContentType: contentTypeFor(file.Type),
		})
		if err != nil {
			return fmt.Errorf("generator: persist %s: %w", file.Path, err)
		}
	}
	return nil
}

func contentTypeFor(fileType BuildFileType) string {
	switch fileType {
	case FileHTML:
		return "text/html; charset=utf-8"
	case FileCSS:
		return "text/css; charset=utf-8"
	case FileJS:
		return "application/javascript"
	case FileJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

func countComponents(components []*pages.ComponentInstance) int {
	count := 0
	for _, component := range components {
		if component != nil {
			count++
		}
	}
	return count
}

func pageIdentifier(page *pages.Page) string {
	if page == nil {
		return "unknown"
	}
	return page.ID.String()
}
