package staticcmd

import (
	"github.com/dramac-main/dramac-cms-sub001/internal/generator"
	"github.com/dramac-main/dramac-cms-sub001/internal/pages"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	buildSiteMessageType = "builder.static.build_site"
	buildPageMessageType = "builder.static.build_page"
	cleanSiteMessageType = "builder.static.clean"
)

// ResultCallback receives build results produced by build operations. The
// callback is optional and is invoked synchronously from the handler.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a static command execution.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Metadata map[string]any
}

// BuildSiteCommand executes a full site build.
type BuildSiteCommand struct {
	Site           []generator.SitePage `json:"-"`
	Options        generator.Options    `json:"options"`
	ResultCallback ResultCallback       `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate ensures the site payload references well-formed pages.
func (m BuildSiteCommand) Validate() error {
	errs := validation.Errors{}
	for _, entry := range m.Site {
		if entry.Page == nil {
			errs["site"] = validation.NewError("builder.static.build_site.page_missing", "site entries must reference a page")
			break
		}
		if entry.Page.ID == uuid.Nil {
			errs["site"] = validation.NewError("builder.static.build_site.page_id_invalid", "site pages must carry valid identifiers")
			break
		}
	}
	if err := validateMode(m.Options.Mode); err != nil {
		errs["options.mode"] = err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BuildPageCommand executes a single page build.
type BuildPageCommand struct {
	Page           *pages.Page                `json:"-"`
	Components     []*pages.ComponentInstance `json:"-"`
	Options        generator.Options          `json:"options"`
	ResultCallback ResultCallback             `json:"-"`
}

// Type implements command.Message.
func (BuildPageCommand) Type() string { return buildPageMessageType }

// Validate ensures the page payload is present and identified.
func (m BuildPageCommand) Validate() error {
	errs := validation.Errors{}
	if m.Page == nil {
		errs["page"] = validation.NewError("builder.static.build_page.page_missing", "page is required")
	} else if m.Page.ID == uuid.Nil {
		errs["page"] = validation.NewError("builder.static.build_page.page_id_invalid", "page must carry a valid identifier")
	}
	if err := validateMode(m.Options.Mode); err != nil {
		errs["options.mode"] = err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CleanSiteCommand clears build artifacts from the configured store.
type CleanSiteCommand struct{}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return cleanSiteMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (CleanSiteCommand) Validate() error { return nil }

func validateMode(mode generator.Mode) error {
	switch mode {
	case "", generator.ModeProduction, generator.ModeDevelopment, generator.ModePreview:
		return nil
	}
	return validation.NewError("builder.static.mode_invalid", "mode must be production, development, or preview")
}
