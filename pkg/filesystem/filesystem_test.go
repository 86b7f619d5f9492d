package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/templates/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	projectDir := filepath.Join(root, "lib", "proj")
	require.NoError(t, fsys.MkdirAll(projectDir, 0755))

	testFile := filepath.Join(projectDir, "[readme]NOTES.md")
	content := []byte("hello world")
	require.NoError(t, fsys.WriteFile(testFile, content, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "[readme]NOTES.md", info.Name())
	assert.Equal(t, int64(len(content)), info.Size())

	got, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = fsys.ReadFile(projectDir)
	assert.Error(t, err, "reading a directory should fail")

	entries, err := fsys.ReadDir(filepath.Join(root, "lib"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "proj", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	_, err = fsys.ReadDir(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestNewAferoFS(t *testing.T) {
	exerciseFS(t, NewAferoFS(afero.NewMemMapFs()), "/")
}
