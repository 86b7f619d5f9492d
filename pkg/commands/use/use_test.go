// pkg/commands/use/use_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Verify batch copying of templates into a destination directory

package use

import (
	"testing"

	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/testutil"
	"github.com/arthur-debert/templates/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTemplates(t *testing.T) types.FS {
	t.Helper()

	fsys := testutil.NewTestFS()
	testutil.BuildTree(t, fsys, "/tpl", testutil.TemplateTree{
		"svelte/[ps]+page.server.ts": "server",
		"svelte/[p]+page.svelte":     "page",
		"svelte/[l]+layout.svelte":   "layout",
		"svelte/notes.txt":           "untagged",
	})
	return fsys
}

func readString(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestUseTemplates(t *testing.T) {
	fsys := setupTemplates(t)

	result, err := UseTemplates(UseTemplatesOptions{
		Config:      &config.Config{TemplatesPath: "/tpl"},
		FS:          fsys,
		Project:     "svelte",
		Pages:       []string{"p", "ps", "missing"},
		Destination: "/out/routes",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.CopiedCount())
	assert.Equal(t, []string{"missing"}, result.NotFound)
	assert.Equal(t, "page", readString(t, fsys, "/out/routes/+page.svelte"))
	assert.Equal(t, "server", readString(t, fsys, "/out/routes/+page.server.ts"))

	_, err = fsys.Stat("/out/routes/+layout.svelte")
	assert.Error(t, err)
}

func TestUseTemplates_RefusesOverwrite(t *testing.T) {
	fsys := setupTemplates(t)
	testutil.WriteFS(t, fsys, "/out/+page.svelte", "mine")

	_, err := UseTemplates(UseTemplatesOptions{
		Config:      &config.Config{TemplatesPath: "/tpl"},
		FS:          fsys,
		Project:     "svelte",
		Pages:       []string{"ps", "p"},
		Destination: "/out",
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileExists))
	assert.Equal(t, "mine", readString(t, fsys, "/out/+page.svelte"))

	// nothing is written when any destination conflicts
	_, statErr := fsys.Stat("/out/+page.server.ts")
	assert.Error(t, statErr)
}

func TestUseTemplates_Force(t *testing.T) {
	fsys := setupTemplates(t)
	testutil.WriteFS(t, fsys, "/out/+page.svelte", "mine")

	result, err := UseTemplates(UseTemplatesOptions{
		Config:      &config.Config{TemplatesPath: "/tpl"},
		FS:          fsys,
		Project:     "svelte",
		Pages:       []string{"p"},
		Destination: "/out",
		Force:       true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.CopiedCount())
	assert.Equal(t, "page", readString(t, fsys, "/out/+page.svelte"))
}

func TestUseTemplates_DryRun(t *testing.T) {
	fsys := setupTemplates(t)
	testutil.WriteFS(t, fsys, "/out/+page.svelte", "mine")

	result, err := UseTemplates(UseTemplatesOptions{
		Config:      &config.Config{TemplatesPath: "/tpl"},
		FS:          fsys,
		Project:     "svelte",
		Pages:       []string{"p", "l"},
		Destination: "/out",
		DryRun:      true,
	})

	require.NoError(t, err)
	assert.True(t, result.DryRun)
	require.Len(t, result.Copied, 2)
	assert.Equal(t, 1, result.CopiedCount())
	assert.Equal(t, "mine", readString(t, fsys, "/out/+page.svelte"))

	_, statErr := fsys.Stat("/out/+layout.svelte")
	assert.Error(t, statErr)
}

func TestUseTemplates_NoPages(t *testing.T) {
	fsys := setupTemplates(t)

	_, err := UseTemplates(UseTemplatesOptions{
		Config:  &config.Config{TemplatesPath: "/tpl"},
		FS:      fsys,
		Project: "svelte",
	})

	assert.True(t, errors.IsErrorCode(err, errors.ErrNoPagesRequested))
}

func TestUseTemplates_NothingMatched(t *testing.T) {
	fsys := setupTemplates(t)

	result, err := UseTemplates(UseTemplatesOptions{
		Config:      &config.Config{TemplatesPath: "/tpl"},
		FS:          fsys,
		Project:     "svelte",
		Pages:       []string{"x", "y"},
		Destination: "/out",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Copied)
	assert.Equal(t, []string{"x", "y"}, result.NotFound)

	_, statErr := fsys.Stat("/out")
	assert.Error(t, statErr)
}

func TestUseTemplates_MissingProject(t *testing.T) {
	fsys := setupTemplates(t)

	_, err := UseTemplates(UseTemplatesOptions{
		Config:  &config.Config{TemplatesPath: "/tpl"},
		FS:      fsys,
		Project: "react",
		Pages:   []string{"p"},
	})

	assert.True(t, errors.IsErrorCode(err, errors.ErrDirectoryNotFound))
}

func TestUseTemplates_SharedDisplayName(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.BuildTree(t, fsys, "/tpl", testutil.TemplateTree{
		"docs/[a]README.md": "from a",
		"docs/[b]README.md": "from b",
	})

	for _, force := range []bool{false, true} {
		_, err := UseTemplates(UseTemplatesOptions{
			Config:      &config.Config{TemplatesPath: "/tpl"},
			FS:          fsys,
			Project:     "docs",
			Pages:       []string{"a", "b"},
			Destination: "/out",
			Force:       force,
		})

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileExists))
		assert.Equal(t, "/out/README.md", errors.GetErrorDetails(err)["path"])

		_, statErr := fsys.Stat("/out/README.md")
		assert.Error(t, statErr)
	}
}

func TestUseTemplates_EmptyDisplayName(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.BuildTree(t, fsys, "/tpl", testutil.TemplateTree{
		"docs/[a]":          "nameless",
		"docs/[b]notes.txt": "notes",
	})

	_, err := UseTemplates(UseTemplatesOptions{
		Config:      &config.Config{TemplatesPath: "/tpl"},
		FS:          fsys,
		Project:     "docs",
		Pages:       []string{"b", "a"},
		Destination: "/out",
		Force:       true,
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedTemplateName))
	assert.Equal(t, "/tpl/docs/[a]", errors.GetErrorDetails(err)["path"])

	_, statErr := fsys.Stat("/out/notes.txt")
	assert.Error(t, statErr)
}
