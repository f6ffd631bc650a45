// Command static builds a deployable site from a directory of markdown page
// definitions. It wires the builder through the command layer so builds get
// the same validation, timeout, and telemetry treatment as embedded hosts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	builder "github.com/dramac-main/dramac-cms-sub001"
	"github.com/dramac-main/dramac-cms-sub001/cmd/static/internal/site"
	staticcmd "github.com/dramac-main/dramac-cms-sub001/internal/commands/static"
	"github.com/dramac-main/dramac-cms-sub001/internal/logging"
)

func main() {
	if err := runBuild(os.Args[1:]); err != nil {
		log.Fatalf("static build failed: %v", err)
	}
}

func runBuild(args []string) error {
	flags := flag.NewFlagSet("static", flag.ContinueOnError)
	contentDir := flags.String("content-dir", "./content", "directory of markdown page definitions")
	outputDir := flags.String("output-dir", "./dist", "directory artifacts are written to (empty for a dry run)")
	baseURL := flags.String("base-url", "", "absolute site URL used for canonical links and the sitemap")
	mode := flags.String("mode", string(builder.ModeProduction), "build mode: production, development, or preview")
	minify := flags.Bool("minify", true, "minify generated CSS and HTML in production builds")
	optimize := flags.Bool("optimize", true, "run the asset optimization pass in production builds")
	inlineCritical := flags.Bool("inline-critical", true, "inline critical CSS into the document head")
	sitemap := flags.Bool("sitemap", true, "emit sitemap.xml when a base URL is set")
	robots := flags.Bool("robots", true, "emit robots.txt")
	themeDir := flags.String("theme-dir", "", "directory holding a theme manifest")
	themeName := flags.String("theme", "", "theme name selected from the manifest")
	themeVariant := flags.String("theme-variant", "", "theme variant, defaults to the manifest default")
	clean := flags.Bool("clean", false, "remove previous artifacts before building")
	logLevel := flags.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flags.String("log-format", "console", "log format: json, console, pretty")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := builder.DefaultConfig()
	cfg.OutputDir = *outputDir
	cfg.BaseURL = *baseURL
	cfg.Mode = builder.Mode(*mode)
	cfg.Minify = *minify
	cfg.OptimizeAssets = *optimize
	cfg.InlineCriticalCSS = *inlineCritical
	cfg.GenerateSitemap = *sitemap
	cfg.GenerateRobots = *robots
	cfg.Logging = builder.LoggingConfig{Level: *logLevel, Format: *logFormat}
	if *themeDir != "" {
		cfg.Theme = builder.ThemeConfig{
			Path:    *themeDir,
			Theme:   *themeName,
			Variant: *themeVariant,
		}
	}

	b, err := builder.New(cfg)
	if err != nil {
		return err
	}

	sitePages, err := site.Load(*contentDir)
	if err != nil {
		return err
	}
	if len(sitePages) == 0 {
		return fmt.Errorf("no pages found in %s", *contentDir)
	}

	ctx := context.Background()
	cmdLogger := logging.ModuleLogger(b.LoggerProvider(), "commands")

	if *clean {
		cleaner := staticcmd.NewCleanSiteHandler(b.Service(), cmdLogger)
		if err := cleaner.Execute(ctx, staticcmd.CleanSiteCommand{}); err != nil {
			return err
		}
	}

	var result *builder.BuildResult
	handler := staticcmd.NewBuildSiteHandler(b.Service(), cmdLogger)
	cmd := staticcmd.BuildSiteCommand{
		Site:    sitePages,
		Options: b.BuildOptions(),
		ResultCallback: func(envelope staticcmd.ResultEnvelope) {
			result = envelope.Result
		},
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("build produced no result")
	}

	fmt.Printf("built %d pages, %d files, %d bytes in %s\n",
		len(sitePages), result.Stats.TotalFiles, result.Stats.TotalSize, result.Duration)
	return nil
}
