package use

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/templates/pkg/commands/internal"
	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/templates"
	"github.com/arthur-debert/templates/pkg/types"
)

// DefaultDestination is where templates are written when none is given
const DefaultDestination = "."

// UseTemplatesOptions defines the options for the UseTemplates command.
type UseTemplatesOptions struct {
	Config *config.Config
	FS     types.FS

	// Project is the sub-directory of the templates root to search
	Project string

	// Pages are the tags to copy, in the order they were requested
	Pages []string

	// Destination is the directory the templates are written into
	Destination string

	// Force allows existing files to be overwritten
	Force bool

	// DryRun reports what would be written without touching the disk
	DryRun bool
}

// UseTemplates copies every template matching one of the pages into the
// destination, named by its display name. Pages without a match are
// reported, not treated as failures. Existing files are never overwritten
// unless Force is set; the check happens before anything is written.
// Two matches sharing a display name, or a match with an empty one, fail
// the whole call, Force or not.
func UseTemplates(opts UseTemplatesOptions) (*types.UseResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "UseTemplates").
		Str("project", opts.Project).
		Strs("pages", opts.Pages).
		Bool("dryRun", opts.DryRun).
		Msg("Executing command")

	dir, err := internal.ProjectDir(opts.FS, opts.Config, opts.Project)
	if err != nil {
		return nil, err
	}

	found, err := templates.FindTemplates(opts.FS, dir, opts.Pages)
	if err != nil {
		return nil, err
	}

	destination := opts.Destination
	if destination == "" {
		destination = DefaultDestination
	}

	result := &types.UseResult{
		Project:     opts.Project,
		Destination: destination,
		NotFound:    found.NotFound,
		DryRun:      opts.DryRun,
	}

	var conflicts []string
	claimed := make(map[string]string, len(found.Matches))
	for _, match := range found.Matches {
		if match.DisplayName == "" {
			return nil, errors.Newf(errors.ErrMalformedTemplateName,
				"template %s has no file name after its tag", match.Path).
				WithDetail("path", match.Path)
		}

		target := filepath.Join(destination, match.DisplayName)
		if first, ok := claimed[target]; ok {
			return nil, errors.Newf(errors.ErrFileExists,
				"templates %s and %s would both be written to %s", first, match.Path, target).
				WithDetail("path", target).
				WithDetail("templates", []string{first, match.Path})
		}
		claimed[target] = match.Path

		exists, err := fileExists(opts.FS, target)
		if err != nil {
			return nil, err
		}

		skipped := exists && !opts.Force
		if skipped {
			conflicts = append(conflicts, target)
		}
		result.Copied = append(result.Copied, types.CopiedTemplate{
			Template:    match,
			Destination: target,
			Skipped:     skipped,
		})
	}

	if opts.DryRun {
		log.Info().Str("command", "UseTemplates").
			Int("wouldCopy", result.CopiedCount()).
			Int("notFound", len(result.NotFound)).
			Msg("Command finished")
		return result, nil
	}

	if len(conflicts) > 0 {
		return nil, errors.Newf(errors.ErrFileExists,
			"refusing to overwrite %s (use --force)", strings.Join(conflicts, ", ")).
			WithDetail("path", conflicts[0]).
			WithDetail("paths", conflicts)
	}

	if len(result.Copied) > 0 {
		if err := opts.FS.MkdirAll(destination, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot create destination %s", destination).
				WithDetail("path", destination)
		}
	}

	for _, c := range result.Copied {
		if err := copyFile(opts.FS, c.Template.Path, c.Destination); err != nil {
			return nil, err
		}
		log.Debug().Str("from", c.Template.Path).Str("to", c.Destination).Msg("Template copied")
	}

	log.Info().Str("command", "UseTemplates").
		Int("copied", result.CopiedCount()).
		Int("notFound", len(result.NotFound)).
		Msg("Command finished")
	return result, nil
}

func fileExists(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot access %s", path).
		WithDetail("path", path)
}

// copyFile copies raw bytes so templates are written exactly as stored
func copyFile(fsys types.FS, from, to string) error {
	data, err := fsys.ReadFile(from)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileNotFound, "cannot read template %s", from).
			WithDetail("path", from)
	}

	perm := os.FileMode(0644)
	if info, err := fsys.Stat(from); err == nil {
		perm = info.Mode().Perm()
	}

	if err := fsys.WriteFile(to, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", to).
			WithDetail("path", to)
	}
	return nil
}
