package show

import (
	"github.com/arthur-debert/templates/pkg/commands/internal"
	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/types"
)

// ShowTemplateOptions defines the options for the ShowTemplate command.
type ShowTemplateOptions struct {
	Config *config.Config
	FS     types.FS

	// Page is the tag to look for, without brackets
	Page string

	// Project is the optional sub-directory of the templates root
	Project string
}

// ShowTemplate resolves a page and returns the template content.
func ShowTemplate(opts ShowTemplateOptions) (*types.ShowResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ShowTemplate").
		Str("page", opts.Page).
		Str("project", opts.Project).
		Msg("Executing command")

	result, err := internal.ResolveTemplate(opts.FS, opts.Config, opts.Page, opts.Project)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ShowTemplate").Str("template", result.Template.Path).Msg("Command finished")
	return result, nil
}
