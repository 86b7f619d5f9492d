package vars

import (
	"os"

	"github.com/arthur-debert/templates/pkg/commands/internal"
	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/filesystem"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/paths"
	"github.com/arthur-debert/templates/pkg/types"
	"github.com/arthur-debert/templates/pkg/variables"
)

// ShowVariablesOptions defines the options for the ShowVariables command.
type ShowVariablesOptions struct {
	Config  *config.Config
	FS      types.FS
	Project string
}

// ApplyVariablesOptions defines the options for the ApplyVariables command.
type ApplyVariablesOptions struct {
	Config  *config.Config
	FS      types.FS
	Project string

	// File is the target whose {{KEY}} placeholders are replaced
	File string

	// DryRun returns the substituted content without writing it
	DryRun bool
}

// ShowVariables lists the bindings of a project's var file.
func ShowVariables(opts ShowVariablesOptions) (*types.VariablesResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ShowVariables").Str("project", opts.Project).Msg("Executing command")

	path, bindings, err := loadProjectBindings(opts.FS, opts.Config, opts.Project)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ShowVariables").Int("bindings", len(bindings)).Msg("Command finished")
	return &types.VariablesResult{Path: path, Bindings: bindings}, nil
}

// ApplyVariables substitutes a project's bindings into a file and writes the
// result back in place. The write is not atomic: an interrupted write can
// leave the file truncated.
func ApplyVariables(opts ApplyVariablesOptions) (*types.ApplyResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ApplyVariables").
		Str("project", opts.Project).
		Str("file", opts.File).
		Bool("dryRun", opts.DryRun).
		Msg("Executing command")

	if err := paths.CheckFile(opts.FS, opts.File); err != nil {
		return nil, err
	}

	varsPath, bindings, err := loadProjectBindings(opts.FS, opts.Config, opts.Project)
	if err != nil {
		return nil, err
	}

	target, err := filesystem.ReadText(opts.FS, opts.File)
	if err != nil {
		return nil, err
	}

	content, applied := variables.Substitute(target, bindings)

	result := &types.ApplyResult{
		Path:          opts.File,
		VariablesPath: varsPath,
		Bindings:      len(bindings),
		Applied:       applied,
		Content:       content,
		DryRun:        opts.DryRun,
	}

	if !opts.DryRun {
		perm := os.FileMode(0644)
		if info, err := opts.FS.Stat(opts.File); err == nil {
			perm = info.Mode().Perm()
		}
		if err := opts.FS.WriteFile(opts.File, []byte(content), perm); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", opts.File).
				WithDetail("path", opts.File)
		}
	}

	log.Info().Str("command", "ApplyVariables").
		Int("bindings", result.Bindings).
		Int("applied", result.Applied).
		Msg("Command finished")
	return result, nil
}

func loadProjectBindings(fsys types.FS, cfg *config.Config, project string) (string, []types.VariableBinding, error) {
	if err := internal.RequireConfig(cfg); err != nil {
		return "", nil, err
	}
	if err := paths.ValidateProject(project); err != nil {
		return "", nil, err
	}

	path := paths.VariablesPath(cfg.TemplatesPath, project)
	if err := paths.CheckFile(fsys, path); err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrFileNotFound, "Variables file not found. Create it at %s", path).
			WithDetail("path", path)
	}

	bindings, err := variables.LoadBindings(fsys, path)
	if err != nil {
		return "", nil, err
	}
	return path, bindings, nil
}
