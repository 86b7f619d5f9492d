package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/templates/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewTemplatesDir builds tree under a fresh "templates" directory inside
// t.TempDir() on the real filesystem and returns its path.
func NewTemplatesDir(t *testing.T, tree TemplateTree) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "templates")
	BuildTree(t, filesystem.NewOS(), root, tree)
	return root
}

// CreateFile writes content to dir/name on disk, creating parents.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	return WriteFS(t, filesystem.NewOS(), filepath.Join(dir, name), content)
}

// CreateDir creates parent/name on disk.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()
	return MkdirFS(t, filesystem.NewOS(), filepath.Join(parent, name))
}

// FileExists reports whether path is a regular file on disk.
func FileExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := filesystem.NewOS().Stat(path)
	return err == nil && !info.IsDir()
}

// ReadFile returns the content of path on disk.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := filesystem.NewOS().ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(content)
}

// AssertFileContent checks a copied or rewritten file byte for byte.
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()

	require.True(t, FileExists(t, path), "file %s does not exist", path)
	assert.Equal(t, expected, ReadFile(t, path), "content of %s", path)
}

// AssertNoFile checks nothing was written at path.
func AssertNoFile(t *testing.T, path string) {
	t.Helper()

	_, err := filesystem.NewOS().Stat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist, "%s should not exist", path)
}
