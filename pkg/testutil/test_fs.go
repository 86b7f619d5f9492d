package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/templates/pkg/filesystem"
	"github.com/arthur-debert/templates/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFS writes content at path inside fsys, creating parent directories.
func WriteFS(t *testing.T, fsys types.FS, path, content string) string {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// MkdirFS creates a directory (and parents) inside fsys.
func MkdirFS(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	if err := fsys.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// TemplateTree describes a templates root as a map of relative path to content.
// A path ending in "/" creates an empty directory.
type TemplateTree map[string]string

// BuildTree materialises tree under root inside fsys.
func BuildTree(t *testing.T, fsys types.FS, root string, tree TemplateTree) {
	t.Helper()

	MkdirFS(t, fsys, root)
	for rel, content := range tree {
		if rel[len(rel)-1] == '/' {
			MkdirFS(t, fsys, filepath.Join(root, rel))
			continue
		}
		WriteFS(t, fsys, filepath.Join(root, rel), content)
	}
}
