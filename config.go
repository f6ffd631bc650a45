package builder

import (
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dramac-main/dramac-cms-sub001/internal/assets"
	"github.com/dramac-main/dramac-cms-sub001/internal/css"
	"github.com/dramac-main/dramac-cms-sub001/internal/generator"
	"github.com/dramac-main/dramac-cms-sub001/internal/logging/gologger"
)

// Mode selects the build profile.
type Mode = generator.Mode

const (
	ModeProduction  = generator.ModeProduction
	ModeDevelopment = generator.ModeDevelopment
	ModePreview     = generator.ModePreview
)

// OptimizeConfig tunes the asset optimization pass.
type OptimizeConfig = assets.OptimizeOptions

// ThemeConfig points the stylesheet generator at an on-disk theme.
type ThemeConfig = css.ThemeConfig

// LoggingConfig configures the go-logger backed provider.
type LoggingConfig = gologger.Config

// Config is the flat option surface for the static build pipeline.
type Config struct {
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

	Optimize OptimizeConfig
	Theme    ThemeConfig
	Logging  LoggingConfig
}

// DefaultConfig returns the documented defaults: production mode with
// minification, optimization, critical CSS inlining, and sitemap/robots
// emission all enabled.
func DefaultConfig() Config {
	return Config{
		Minify:            true,
		OptimizeAssets:    true,
		InlineCriticalCSS: true,
		GenerateSitemap:   true,
		GenerateRobots:    true,
		Mode:              ModeProduction,
		Optimize:          assets.DefaultOptimizeOptions(),
	}
}

// Validate enforces the option invariants before a builder is constructed.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Mode, validation.In(ModeProduction, ModeDevelopment, ModePreview)),
		validation.Field(&c.BaseURL, validation.By(validBaseURL)),
	)
}

func validBaseURL(value any) error {
	raw, _ := value.(string)
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return validation.NewError("builder.config.base_url_invalid", "baseUrl must be an absolute URL")
	}
	return nil
}

// buildOptions maps the config onto the per-build option surface.
func (c Config) buildOptions() generator.Options {
	mode := c.Mode
	if mode == "" {
		mode = ModeProduction
	}
	return generator.Options{
		OutputDir:         c.OutputDir,
		Minify:            c.Minify,
		OptimizeAssets:    c.OptimizeAssets,
		InlineCriticalCSS: c.InlineCriticalCSS,
		SourceMaps:        c.SourceMaps,
		BaseURL:           c.BaseURL,
		GenerateSitemap:   c.GenerateSitemap,
		GenerateRobots:    c.GenerateRobots,
		HeadContent:       c.HeadContent,
		BodyScripts:       c.BodyScripts,
		Mode:              mode,
		DryRun:            strings.TrimSpace(c.OutputDir) == "",
	}
}
