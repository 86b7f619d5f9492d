package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/types"
)

// ValidateProject checks that a project scope stays inside the templates root.
// Nested scopes such as "web/svelte" are allowed.
func ValidateProject(project string) error {
	if project == "" {
		return nil
	}

	if strings.Contains(project, "\x00") {
		return errors.New(errors.ErrInvalidInput, "project contains null bytes")
	}

	if filepath.IsAbs(project) {
		return errors.Newf(errors.ErrInvalidInput, "project %q must be relative to the templates root", project)
	}

	cleaned := filepath.Clean(project)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return errors.Newf(errors.ErrInvalidInput, "project %q escapes the templates root", project)
	}

	return nil
}

// CheckFolder verifies that path exists and is a directory
func CheckFolder(fsys types.FS, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrDirectoryNotFound, "folder does not exist: %s", path).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrDirectoryNotFound, "cannot access folder %s", path).
			WithDetail("path", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrDirectoryNotFound, "path is not a folder: %s", path).
			WithDetail("path", path)
	}
	return nil
}

// CheckFile verifies that path exists and is a regular file
func CheckFile(fsys types.FS, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrFileNotFound, "file does not exist: %s", path).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrFileNotFound, "cannot access file %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrFileNotFound, "path is not a file: %s", path).
			WithDetail("path", path)
	}
	return nil
}
