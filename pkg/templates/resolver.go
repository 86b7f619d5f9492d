package templates

import (
	"path/filepath"

	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/types"
)

// FindTemplate returns the first file in directory whose tag equals page.
// Entries that are directories or carry no valid tag are skipped. A nil
// entry with a nil error means nothing matched; turning that into a
// user-facing message is up to the caller.
func FindTemplate(fsys types.FS, directory, page string) (*types.TemplateEntry, error) {
	logger := logging.GetLogger("templates.resolver").With().
		Str("directory", directory).
		Str("page", page).
		Logger()

	entries, err := scanTagged(fsys, directory)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.Tag == page {
			logger.Debug().Str("path", entry.Path).Msg("Template found")
			return &entry, nil
		}
	}

	logger.Debug().Msg("No template matches page")
	return nil, nil
}

// FindTemplates resolves several pages with a single directory read.
// Every entry whose tag is one of the requested pages is returned in scan
// order. Pages nothing matched are listed in NotFound in request order;
// they are not an error. An empty page list fails with ErrNoPagesRequested
// before the directory is touched.
func FindTemplates(fsys types.FS, directory string, pages []string) (*types.FindTemplatesResult, error) {
	if len(pages) == 0 {
		return nil, errors.New(errors.ErrNoPagesRequested, "no pages provided").
			WithDetail("directory", directory)
	}

	logger := logging.GetLogger("templates.resolver").With().
		Str("directory", directory).
		Strs("pages", pages).
		Logger()

	entries, err := scanTagged(fsys, directory)
	if err != nil {
		return nil, err
	}

	requested := make(map[string]bool, len(pages))
	var order []string
	for _, page := range pages {
		if requested[page] {
			continue
		}
		requested[page] = true
		order = append(order, page)
	}

	result := &types.FindTemplatesResult{}
	matched := make(map[string]bool, len(order))
	for _, entry := range entries {
		if !requested[entry.Tag] {
			continue
		}
		result.Matches = append(result.Matches, entry)
		matched[entry.Tag] = true
	}

	for _, page := range order {
		if !matched[page] {
			result.NotFound = append(result.NotFound, page)
		}
	}

	logger.Debug().
		Int("matches", len(result.Matches)).
		Strs("not_found", result.NotFound).
		Msg("Resolved pages")

	return result, nil
}

// scanTagged lists the tagged regular files directly inside directory.
func scanTagged(fsys types.FS, directory string) ([]types.TemplateEntry, error) {
	logger := logging.GetLogger("templates.resolver")

	dirEntries, err := fsys.ReadDir(directory)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirectoryNotFound, "cannot read project directory %s", directory).
			WithDetail("path", directory)
	}

	entries := make([]types.TemplateEntry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if dirEntry.IsDir() {
			logger.Trace().Str("name", name).Msg("Skipping directory")
			continue
		}

		tag, displayName, err := ParseTag(name)
		if err != nil {
			logger.Trace().Str("name", name).Msg("Skipping untagged file")
			continue
		}

		entries = append(entries, types.TemplateEntry{
			Tag:         tag,
			DisplayName: displayName,
			Path:        filepath.Join(directory, name),
		})
	}

	return entries, nil
}
