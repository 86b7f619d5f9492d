package paths

import (
	"os"
	"path/filepath"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// File names that are part of the templates tree layout. They are not
// user-configurable.
const (
	// VariablesFileName is the per-project bindings file
	VariablesFileName = "var"

	// DefaultTemplatesPath is written to a freshly created config file
	DefaultTemplatesPath = "~/templates"
)

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ProjectPath joins a project scope onto the templates root.
// An empty project means the root itself.
func ProjectPath(templatesRoot, project string) string {
	if project == "" {
		return templatesRoot
	}
	return filepath.Join(templatesRoot, project)
}

// VariablesPath returns the location of the var file for a project scope
func VariablesPath(templatesRoot, project string) string {
	return filepath.Join(ProjectPath(templatesRoot, project), VariablesFileName)
}
