package css

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// ThemeConfig points the generator at an on-disk theme manifest whose tokens
// become :root custom properties.
type ThemeConfig struct {
	Path              string
	Theme             string
	Variant           string
	CSSVariablePrefix string
}

func (c ThemeConfig) Enabled() bool {
	return strings.TrimSpace(c.Path) != ""
}

// ThemeSource loads and caches a theme manifest and resolves its variables.
type ThemeSource struct {
	cfg      ThemeConfig
	registry *gotheme.MemoryRegistry

	mu     sync.Mutex
	loaded bool
}

func NewThemeSource(cfg ThemeConfig) *ThemeSource {
	return &ThemeSource{
		cfg:      cfg,
		registry: gotheme.NewRegistry(),
	}
}

// Variables returns the custom properties for the configured theme and
// variant. It returns an empty map when no theme is configured.
func (s *ThemeSource) Variables() (map[string]string, error) {
	if s == nil || !s.cfg.Enabled() {
		return map[string]string{}, nil
	}
	if err := s.ensureManifest(); err != nil {
		return nil, err
	}

	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   strings.TrimSpace(s.cfg.Theme),
		DefaultVariant: strings.TrimSpace(s.cfg.Variant),
	}
	selection, err := selector.Select(s.cfg.Theme, s.cfg.Variant)
	if err != nil {
		return nil, fmt.Errorf("css: select theme %s: %w", s.cfg.Theme, err)
	}
	return selection.CSSVariables(s.cfg.CSSVariablePrefix), nil
}

func (s *ThemeSource) ensureManifest() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	cleaned := filepath.Clean(strings.TrimSpace(s.cfg.Path))
	manifest, err := gotheme.LoadDir(os.DirFS(cleaned), ".")
	if err != nil {
		return fmt.Errorf("css: load theme manifest from %s: %w", cleaned, err)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		manifest.Name = strings.TrimSpace(s.cfg.Theme)
	}
	if manifest.Name == "" {
		return fmt.Errorf("css: theme name required for manifest registration")
	}
	if err := s.registry.Register(manifest); err != nil {
		return fmt.Errorf("css: register theme manifest: %w", err)
	}
	s.loaded = true
	return nil
}
