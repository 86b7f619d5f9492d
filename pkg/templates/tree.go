package templates

import (
	"path/filepath"

	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/filesystem"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/paths"
	"github.com/arthur-debert/templates/pkg/types"
	"github.com/arthur-debert/templates/pkg/variables"
	"github.com/bmatcuk/doublestar/v4"
)

// ListTemplates walks templatesRoot and, for every directory directly under
// it, that directory's immediate entries. Deeper levels are not visited.
// A second-level entry named exactly "var" is parsed with
// variables.ListBindings and its bindings attached to the node.
func ListTemplates(fsys types.FS, templatesRoot string) (*types.TreeReport, error) {
	logger := logging.GetLogger("templates.tree").With().
		Str("root", templatesRoot).
		Logger()
	defer logging.LogOperationStart(logger, "ListTemplates")()

	topEntries, err := fsys.ReadDir(templatesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirectoryNotFound, "cannot read templates root %s", templatesRoot).
			WithDetail("path", templatesRoot)
	}

	report := &types.TreeReport{
		Root:    templatesRoot,
		Entries: make([]types.TreeNode, 0, len(topEntries)),
	}

	for _, entry := range topEntries {
		node := newNode(filepath.Join(templatesRoot, entry.Name()), entry.Name(), entry.IsDir())

		if node.IsDir {
			children, err := listChildren(fsys, node.Path)
			if err != nil {
				return nil, err
			}
			node.Children = children
		}

		report.Entries = append(report.Entries, node)
	}

	logger.Debug().
		Int("entries", len(report.Entries)).
		Int("templates", report.TemplateCount()).
		Msg("Listed templates tree")

	return report, nil
}

func listChildren(fsys types.FS, dir string) ([]types.TreeNode, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirectoryNotFound, "cannot read project directory %s", dir).
			WithDetail("path", dir)
	}

	children := make([]types.TreeNode, 0, len(entries))
	for _, entry := range entries {
		child := newNode(filepath.Join(dir, entry.Name()), entry.Name(), entry.IsDir())

		if entry.Name() == paths.VariablesFileName && !entry.IsDir() {
			content, err := filesystem.ReadText(fsys, child.Path)
			if err != nil {
				return nil, err
			}
			child.IsVariables = true
			child.Bindings = variables.ListBindings(content)
		}

		children = append(children, child)
	}

	return children, nil
}

func newNode(path, name string, isDir bool) types.TreeNode {
	node := types.TreeNode{
		Name:  name,
		Path:  path,
		IsDir: isDir,
	}
	if tag, displayName, err := ParseTag(name); err == nil {
		node.Tagged = true
		node.Tag = tag
		node.DisplayName = displayName
	}
	return node
}

// FilterTree keeps the files whose display name (or raw name, for untagged
// entries) matches the doublestar glob pattern. Directories survive when any
// of their children does; var files are kept alongside surviving siblings.
func FilterTree(report *types.TreeReport, pattern string) (*types.TreeReport, error) {
	if pattern == "" {
		return report, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid filter pattern %q", pattern).
			WithDetail("pattern", pattern)
	}

	filtered := &types.TreeReport{Root: report.Root}
	for _, entry := range report.Entries {
		if !entry.IsDir {
			if nodeMatches(entry, pattern) {
				filtered.Entries = append(filtered.Entries, entry)
			}
			continue
		}

		var kept []types.TreeNode
		var vars []types.TreeNode
		for _, child := range entry.Children {
			switch {
			case child.IsVariables:
				vars = append(vars, child)
			case nodeMatches(child, pattern):
				kept = append(kept, child)
			}
		}
		if len(kept) == 0 {
			continue
		}

		dir := entry
		dir.Children = append(kept, vars...)
		filtered.Entries = append(filtered.Entries, dir)
	}

	return filtered, nil
}

func nodeMatches(node types.TreeNode, pattern string) bool {
	name := node.Name
	if node.Tagged {
		name = node.DisplayName
	}
	ok, _ := doublestar.Match(pattern, name)
	return ok
}
