package staticcmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/dramac-main/dramac-cms-sub001/internal/commands"
	"github.com/dramac-main/dramac-cms-sub001/internal/generator"
	"github.com/dramac-main/dramac-cms-sub001/internal/logging"
	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

// ErrServiceRequired signals a handler constructed without a build service.
var ErrServiceRequired = errors.New("staticcmd: build service is required")

// BuildSiteHandler orchestrates site builds using the shared command handler
// foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler constructs a handler wired to the provided build service.
func NewBuildSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if service == nil {
			return ErrServiceRequired
		}
		result := service.BuildSite(ctx, msg.Site, msg.Options)
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Result: result,
			Metadata: map[string]any{
				"operation": "build_site",
				"pages":     len(msg.Site),
			},
		})
		if !result.Success {
			return fmt.Errorf("staticcmd: site build failed: %s", result.Error)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand]("static.build_site"),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{
				"pages": len(msg.Site),
			}
			if msg.Options.DryRun {
				fields["dry_run"] = true
			}
			if msg.Options.Mode != "" {
				fields["mode"] = string(msg.Options.Mode)
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildPageHandler executes single page builds.
type BuildPageHandler struct {
	inner *commands.Handler[BuildPageCommand]
}

// NewBuildPageHandler constructs a handler that builds one page per message.
func NewBuildPageHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildPageCommand]) *BuildPageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildPageCommand) error {
		if service == nil {
			return ErrServiceRequired
		}
		result := service.BuildPage(ctx, msg.Page, msg.Components, msg.Options)
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Result: result,
			Metadata: map[string]any{
				"operation": "build_page",
				"page_id":   msg.Page.ID,
			},
		})
		if !result.Success {
			return fmt.Errorf("staticcmd: page build failed: %s", result.Error)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildPageCommand]{
		commands.WithLogger[BuildPageCommand](baseLogger),
		commands.WithOperation[BuildPageCommand]("static.build_page"),
		commands.WithMessageFields(func(msg BuildPageCommand) map[string]any {
			fields := map[string]any{
				"components": len(msg.Components),
			}
			if msg.Page != nil {
				fields["page_id"] = msg.Page.ID.String()
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildPageCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildPageHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildPageCommand].
func (h *BuildPageHandler) Execute(ctx context.Context, msg BuildPageCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CleanSiteHandler clears build artifacts.
type CleanSiteHandler struct {
	inner *commands.Handler[CleanSiteCommand]
}

// NewCleanSiteHandler constructs a handler that delegates to Service.Clean.
func NewCleanSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CleanSiteCommand]) *CleanSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, _ CleanSiteCommand) error {
		if service == nil {
			return ErrServiceRequired
		}
		return service.Clean(ctx)
	}

	handlerOpts := []commands.HandlerOption[CleanSiteCommand]{
		commands.WithLogger[CleanSiteCommand](baseLogger),
		commands.WithOperation[CleanSiteCommand]("static.clean"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CleanSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CleanSiteCommand].
func (h *CleanSiteHandler) Execute(ctx context.Context, msg CleanSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

func invokeCallback(callback ResultCallback, envelope ResultEnvelope) {
	if callback == nil {
		return
	}
	callback(envelope)
}
