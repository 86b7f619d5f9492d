package copytemplate

import (
	"github.com/arthur-debert/templates/pkg/clipboard"
	"github.com/arthur-debert/templates/pkg/commands/internal"
	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/types"
)

// CopyTemplateOptions defines the options for the CopyTemplate command.
type CopyTemplateOptions struct {
	Config  *config.Config
	FS      types.FS
	Page    string
	Project string

	// Clipboard receives the template content. When nil, the configured
	// clipboard command is used.
	Clipboard clipboard.Writer
}

// CopyTemplate resolves a page and pipes its content into the clipboard.
func CopyTemplate(opts CopyTemplateOptions) (*types.ShowResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "CopyTemplate").
		Str("page", opts.Page).
		Str("project", opts.Project).
		Msg("Executing command")

	result, err := internal.ResolveTemplate(opts.FS, opts.Config, opts.Page, opts.Project)
	if err != nil {
		return nil, err
	}

	writer := opts.Clipboard
	if writer == nil {
		cmd, err := clipboard.NewCommand(opts.Config.ClipboardCommand)
		if err != nil {
			return nil, err
		}
		writer = cmd
	}

	if err := writer.Write(result.Content); err != nil {
		return nil, err
	}

	log.Info().Str("command", "CopyTemplate").Str("template", result.Template.Path).Msg("Command finished")
	return result, nil
}
