// Package builder turns page models and component trees into deployable
// static sites: extracted and optimized assets, generated stylesheets,
// rendered HTML documents, and sitemap/robots artifacts.
package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/dramac-main/dramac-cms-sub001/internal/catalog"
	"github.com/dramac-main/dramac-cms-sub001/internal/css"
	"github.com/dramac-main/dramac-cms-sub001/internal/generator"
	"github.com/dramac-main/dramac-cms-sub001/internal/logging"
	"github.com/dramac-main/dramac-cms-sub001/internal/logging/gologger"
	"github.com/dramac-main/dramac-cms-sub001/internal/pages"
	"github.com/dramac-main/dramac-cms-sub001/internal/renderers"
	"github.com/dramac-main/dramac-cms-sub001/internal/storage"
	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

// Page, component, and result types re-exported for host applications.
type (
	Page              = pages.Page
	Zone              = pages.Zone
	ComponentInstance = pages.ComponentInstance
	SitePage          = generator.SitePage
	BuildResult       = generator.BuildResult
	BuildFile         = generator.BuildFile
	BuildStats        = generator.BuildStats
	RenderContext     = interfaces.RenderContext
	ComponentRenderer = interfaces.ComponentRenderer
)

// Builder wires the build pipeline: renderer registry, field catalog,
// artifact store, theming, and the orchestrating service.
type Builder struct {
	config   Config
	provider interfaces.LoggerProvider
	registry *renderers.Registry
	catalog  *catalog.Registry
	service  generator.Service
}

// Option customizes builder construction.
type Option func(*Builder)

// WithLoggerProvider overrides the default go-logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(b *Builder) {
		b.provider = provider
	}
}

// WithRendererRegistry substitutes a caller-managed renderer registry. The
// built-in component renderers are not installed on substituted registries.
func WithRendererRegistry(registry *renderers.Registry) Option {
	return func(b *Builder) {
		b.registry = registry
	}
}

// New validates the configuration and wires a ready-to-use builder.
func New(cfg Config, opts ...Option) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("builder: invalid config: %w", err)
	}

	b := &Builder{
		config:  cfg,
		catalog: catalog.NewRegistry(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.provider == nil {
		provider, err := gologger.NewProvider(cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("builder: logging: %w", err)
		}
		b.provider = provider
	}

	if b.registry == nil {
		b.registry = renderers.NewRegistry()
		if err := renderers.RegisterBuiltIns(b.registry); err != nil {
			return nil, err
		}
	}

	var store interfaces.ArtifactStore
	if strings.TrimSpace(cfg.OutputDir) != "" {
		fileStore, err := storage.NewFileStore(cfg.OutputDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	}

	var theme *css.ThemeSource
	if cfg.Theme.Enabled() {
		theme = css.NewThemeSource(cfg.Theme)
	}

	b.service = generator.NewService(
		generator.Config{Optimize: cfg.Optimize},
		generator.Dependencies{
			Renderers: b.registry,
			Catalog:   b.catalog,
			Store:     store,
			Theme:     theme,
			Logger:    logging.GeneratorLogger(b.provider),
		},
	)
	return b, nil
}

// BuildPage builds one page. The result always comes back; inspect Success.
func (b *Builder) BuildPage(ctx context.Context, page *Page, components []*ComponentInstance) *BuildResult {
	return b.service.BuildPage(ctx, page, components, b.config.buildOptions())
}

// BuildSite builds every page in order with fail-fast semantics, then the
// site-level sitemap and robots artifacts.
func (b *Builder) BuildSite(ctx context.Context, site []SitePage) *BuildResult {
	return b.service.BuildSite(ctx, site, b.config.buildOptions())
}

// Clean removes previously emitted artifacts from the output directory.
func (b *Builder) Clean(ctx context.Context) error {
	return b.service.Clean(ctx)
}

// Renderers exposes the component renderer registry so hosts can install
// custom component types.
func (b *Builder) Renderers() *renderers.Registry {
	return b.registry
}

// Catalog exposes the field catalog used for schema-driven asset extraction.
func (b *Builder) Catalog() *catalog.Registry {
	return b.catalog
}

// BuildOptions returns the generator options derived from the configuration,
// for callers that drive the service through the command layer.
func (b *Builder) BuildOptions() generator.Options {
	return b.config.buildOptions()
}

// Service exposes the underlying build service for command-layer wiring.
func (b *Builder) Service() generator.Service {
	return b.service
}

// LoggerProvider exposes the provider for hosts that share the log pipeline.
func (b *Builder) LoggerProvider() interfaces.LoggerProvider {
	return b.provider
}
