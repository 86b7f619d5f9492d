package internal

import (
	"fmt"

	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/filesystem"
	"github.com/arthur-debert/templates/pkg/paths"
	"github.com/arthur-debert/templates/pkg/templates"
	"github.com/arthur-debert/templates/pkg/types"
)

// TemplateNotFoundMessage is shown when no file carries the requested page tag
const TemplateNotFoundMessage = "Template not found. Create it in the templates folder with the format [%s]filename"

// RequireConfig fails when a command is invoked without a loaded config
func RequireConfig(cfg *config.Config) error {
	if cfg == nil {
		return errors.New(errors.ErrInternal, "configuration not loaded")
	}
	return nil
}

// ProjectDir validates the project scope and returns its directory under
// the templates root. The directory must exist.
func ProjectDir(fsys types.FS, cfg *config.Config, project string) (string, error) {
	if err := RequireConfig(cfg); err != nil {
		return "", err
	}
	if err := paths.ValidateProject(project); err != nil {
		return "", err
	}

	dir := paths.ProjectPath(cfg.TemplatesPath, project)
	if err := paths.CheckFolder(fsys, dir); err != nil {
		return "", err
	}
	return dir, nil
}

// ResolveTemplate finds the template for page in the project scope and reads
// its content
func ResolveTemplate(fsys types.FS, cfg *config.Config, page, project string) (*types.ShowResult, error) {
	dir, err := ProjectDir(fsys, cfg, project)
	if err != nil {
		return nil, err
	}

	entry, err := templates.FindTemplate(fsys, dir, page)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.New(errors.ErrTemplateNotFound, fmt.Sprintf(TemplateNotFoundMessage, page)).
			WithDetail("page", page).
			WithDetail("directory", dir)
	}

	content, err := filesystem.ReadText(fsys, entry.Path)
	if err != nil {
		return nil, err
	}

	return &types.ShowResult{Template: *entry, Content: content}, nil
}
