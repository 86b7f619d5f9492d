package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	fsys := NewTestFS()

	BuildTree(t, fsys, "/lib", TemplateTree{
		"proj/[readme]NOTES.md": "# Notes",
		"proj/var":              "NAME=Acme",
		"empty/":                "",
	})

	content, err := fsys.ReadFile("/lib/proj/[readme]NOTES.md")
	require.NoError(t, err)
	assert.Equal(t, "# Notes", string(content))

	info, err := fsys.Stat("/lib/empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, filepath.Join("proj", "var"), "A=1")

	AssertFileContent(t, path, "A=1")
	assert.True(t, FileExists(t, path))
	assert.False(t, FileExists(t, CreateDir(t, dir, "other")))
	AssertNoFile(t, filepath.Join(dir, "missing"))
}

func TestNewTemplatesDir(t *testing.T) {
	root := NewTemplatesDir(t, TemplateTree{
		"svelte/[p]+page.svelte": "<h1>{{TITLE}}</h1>",
		"svelte/var":             "TITLE=Home",
	})

	assert.Equal(t, "templates", filepath.Base(root))
	AssertFileContent(t, filepath.Join(root, "svelte", "[p]+page.svelte"), "<h1>{{TITLE}}</h1>")
	AssertFileContent(t, filepath.Join(root, "svelte", "var"), "TITLE=Home")
}
