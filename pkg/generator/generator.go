// Package generator exposes the static build API for hosts that embed the
// pipeline directly. Use NewService with Config and Dependencies to build
// single pages or whole sites.
package generator

import internal "github.com/dramac-main/dramac-cms-sub001/internal/generator"

type (
	Service      = internal.Service
	Config       = internal.Config
	Options      = internal.Options
	Mode         = internal.Mode
	SitePage     = internal.SitePage
	Dependencies = internal.Dependencies
	BuildResult  = internal.BuildResult
	BuildFile    = internal.BuildFile
	BuildStats   = internal.BuildStats
)

const (
	ModeProduction  = internal.ModeProduction
	ModeDevelopment = internal.ModeDevelopment
	ModePreview     = internal.ModePreview
)

var (
	ErrPageRequired     = internal.ErrPageRequired
	ErrRegistryRequired = internal.ErrRegistryRequired
)

// NewService wires a build service with the supplied configuration and
// dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	return internal.NewService(cfg, deps)
}

// DefaultOptions mirrors the documented build option defaults.
func DefaultOptions() Options {
	return internal.DefaultOptions()
}
