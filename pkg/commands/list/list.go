package list

import (
	"github.com/arthur-debert/templates/pkg/commands/internal"
	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/templates"
	"github.com/arthur-debert/templates/pkg/types"
)

// ListTemplatesOptions defines the options for the ListTemplates command.
type ListTemplatesOptions struct {
	Config *config.Config
	FS     types.FS

	// Filter is an optional glob matched against display names
	Filter string
}

// ListTemplates builds the tree report of the templates root.
func ListTemplates(opts ListTemplatesOptions) (*types.TreeReport, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListTemplates").Str("filter", opts.Filter).Msg("Executing command")

	if err := internal.RequireConfig(opts.Config); err != nil {
		return nil, err
	}

	report, err := templates.ListTemplates(opts.FS, opts.Config.TemplatesPath)
	if err != nil {
		return nil, err
	}

	report, err = templates.FilterTree(report, opts.Filter)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ListTemplates").
		Int("entries", len(report.Entries)).
		Int("templates", report.TemplateCount()).
		Msg("Command finished")
	return report, nil
}
