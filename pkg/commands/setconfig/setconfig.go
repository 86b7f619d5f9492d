package setconfig

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/paths"
	"github.com/arthur-debert/templates/pkg/types"
)

// SetConfigOptions defines the options for the SetConfig command.
type SetConfigOptions struct {
	FS types.FS

	// ConfigPath is the config file to update
	ConfigPath string

	// TemplatesPath is the new templates root. It must be an existing folder.
	TemplatesPath string

	// ClipboardCommand replaces the clipboard program when non-empty
	ClipboardCommand string
}

// SetConfig validates the templates folder, saves it to the config file and
// returns the reloaded configuration.
func SetConfig(opts SetConfigOptions) (*config.Config, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "SetConfig").
		Str("templatesPath", opts.TemplatesPath).
		Str("clipboard", opts.ClipboardCommand).
		Msg("Executing command")

	if strings.TrimSpace(opts.TemplatesPath) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "templates path is required")
	}

	stored := opts.TemplatesPath
	if !strings.HasPrefix(stored, "~") {
		abs, err := filepath.Abs(stored)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", stored).
				WithDetail("path", stored)
		}
		stored = abs
	}

	if err := paths.CheckFolder(opts.FS, paths.ExpandHome(stored)); err != nil {
		return nil, err
	}

	if err := config.Save(opts.ConfigPath, stored, strings.TrimSpace(opts.ClipboardCommand)); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "SetConfig").Str("templatesPath", cfg.TemplatesPath).Msg("Command finished")
	return cfg, nil
}
