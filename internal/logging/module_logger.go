package logging

import (
	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

const (
	rootModule      = "builder"
	assetsModule    = "builder.assets"
	cssModule       = "builder.css"
	renderModule    = "builder.render"
	generatorModule = "builder.generator"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// AssetsLogger returns the logger namespace reserved for asset processing.
func AssetsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, assetsModule)
}

// CSSLogger returns the logger namespace reserved for stylesheet generation.
func CSSLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, cssModule)
}

// RenderLogger returns the logger namespace reserved for HTML rendering.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// GeneratorLogger returns the logger namespace reserved for the build orchestrator.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}
