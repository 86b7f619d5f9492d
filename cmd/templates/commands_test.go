// cmd/templates/commands_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir), cobra command tree
// PURPOSE: Run the CLI end to end against a temporary templates folder

package templates

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	root       string
	configPath string
	work       string
}

func setupCLI(t *testing.T) *cliEnv {
	t.Helper()

	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))

	root := testutil.NewTemplatesDir(t, testutil.TemplateTree{
		"[gitignore].gitignore":      "node_modules\n",
		"svelte/[p]+page.svelte":     "<h1>{{TITLE}}</h1>\n",
		"svelte/[ps]+page.server.ts": "export const load = () => ({});\n",
		"svelte/var":                 "TITLE = Welcome\n",
	})

	raw, err := json.Marshal(map[string]string{
		"templates_path":    root,
		"clipboard_command": "cat",
	})
	require.NoError(t, err)
	configPath := testutil.CreateFile(t, tmp, "config/templates-cli.json", string(raw))

	return &cliEnv{
		root:       root,
		configPath: configPath,
		work:       testutil.CreateDir(t, tmp, "work"),
	}
}

func (e *cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestShowCmd(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "show", "p", "svelte")
	require.NoError(t, err)
	assert.Equal(t, "<h1>{{TITLE}}</h1>\n\n", out)

	out, err = env.run(t, "show", "gitignore")
	require.NoError(t, err)
	assert.Equal(t, "node_modules\n\n", out)
}

func TestShowCmd_NotFound(t *testing.T) {
	env := setupCLI(t)

	_, err := env.run(t, "show", "layout", "svelte")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
	assert.Contains(t, err.Error(), "Template not found. Create it in the templates folder with the format [layout]filename")
}

func TestShowCmd_RequiresPage(t *testing.T) {
	env := setupCLI(t)

	_, err := env.run(t, "show")
	assert.Error(t, err)
}

func TestCopyCmd(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "copy", "ps", "svelte")
	require.NoError(t, err)
	assert.Equal(t, "Copied +page.server.ts to the clipboard\n", out)
}

func TestUseCmd(t *testing.T) {
	env := setupCLI(t)
	dest := filepath.Join(env.work, "routes")

	out, err := env.run(t, "use", "svelte", "p", "ps", "layout", "-p", dest)
	require.NoError(t, err)

	testutil.AssertFileContent(t, filepath.Join(dest, "+page.svelte"), "<h1>{{TITLE}}</h1>\n")
	testutil.AssertFileContent(t, filepath.Join(dest, "+page.server.ts"), "export const load = () => ({});\n")
	assert.Contains(t, out, "+ +page.svelte -> "+filepath.Join(dest, "+page.svelte"))
	assert.Contains(t, out, "! layout not found")
}

func TestUseCmd_DryRunAndForce(t *testing.T) {
	env := setupCLI(t)
	existing := testutil.CreateFile(t, env.work, "+page.svelte", "mine")

	out, err := env.run(t, "use", "svelte", "p", "ps", "-p", env.work, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "dry run, nothing written")
	testutil.AssertNoFile(t, filepath.Join(env.work, "+page.server.ts"))

	_, err = env.run(t, "use", "svelte", "p", "-p", env.work)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileExists))
	testutil.AssertFileContent(t, existing, "mine")

	_, err = env.run(t, "use", "svelte", "p", "-p", env.work, "--force")
	require.NoError(t, err)
	testutil.AssertFileContent(t, existing, "<h1>{{TITLE}}</h1>\n")
}

func TestListCmd(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "[gitignore].gitignore\n")
	assert.Contains(t, out, "svelte\n")
	assert.Contains(t, out, "  [p]+page.svelte\n")
	assert.Contains(t, out, "  var\n    TITLE=Welcome \\")
}

func TestListCmd_Filter(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "list", "--filter", "*.ts")
	require.NoError(t, err)

	assert.Contains(t, out, "[ps]+page.server.ts")
	assert.NotContains(t, out, "+page.svelte")
	assert.NotContains(t, out, "gitignore")
}

func TestVarCmd(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "var", "svelte")
	require.NoError(t, err)
	assert.Equal(t, "TITLE=Welcome\n", out)

	_, err = env.run(t, "var")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Variables file not found")
}

func TestApplyCmd(t *testing.T) {
	env := setupCLI(t)
	target := testutil.CreateFile(t, env.work, "index.svelte", "<title>{{TITLE}}</title>")

	out, err := env.run(t, "apply", target, "svelte", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "<title>Welcome</title>", out)
	testutil.AssertFileContent(t, target, "<title>{{TITLE}}</title>")

	out, err = env.run(t, "apply", target, "svelte")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 1 variables applied")
	testutil.AssertFileContent(t, target, "<title>Welcome</title>")
}

func TestConfigCmd(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "config: "+env.configPath)
	assert.Contains(t, out, "templates_path: "+env.root)
	assert.Contains(t, out, "clipboard_command: cat")
	assert.Contains(t, out, "  [ps]+page.server.ts")
}

func TestSetCmd(t *testing.T) {
	env := setupCLI(t)
	other := testutil.CreateDir(t, env.work, "more-templates")

	out, err := env.run(t, "set", other, "--clipboard", "wl-copy")
	require.NoError(t, err)
	assert.Contains(t, out, "Setting templates path to "+other)
	assert.Contains(t, out, "Setting clipboard command to wl-copy")

	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(testutil.ReadFile(t, env.configPath)), &stored))
	assert.Equal(t, other, stored["templates_path"])
	assert.Equal(t, "wl-copy", stored["clipboard_command"])
}

func TestSetCmd_MissingFolderKeepsConfig(t *testing.T) {
	env := setupCLI(t)
	before := testutil.ReadFile(t, env.configPath)

	_, err := env.run(t, "set", filepath.Join(env.work, "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirectoryNotFound))
	assert.Equal(t, before, testutil.ReadFile(t, env.configPath))
}

func TestSetCmd_Prompt(t *testing.T) {
	env := setupCLI(t)
	other := testutil.CreateDir(t, env.work, "prompted")

	origTerminal, origPrompt := stdinIsTerminal, promptTemplatesPath
	t.Cleanup(func() { stdinIsTerminal, promptTemplatesPath = origTerminal, origPrompt })

	stdinIsTerminal = func() bool { return false }
	_, err := env.run(t, "set")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	var askedDefault string
	stdinIsTerminal = func() bool { return true }
	promptTemplatesPath = func(defaultPath string) (string, error) {
		askedDefault = defaultPath
		return other, nil
	}

	_, err = env.run(t, "set")
	require.NoError(t, err)
	assert.Equal(t, "~/templates", askedDefault)
	assert.Contains(t, testutil.ReadFile(t, env.configPath), other)
}

func TestHelpTopics(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "naming")
	assert.Contains(t, out, "variables")
	assert.Contains(t, out, "--dry-run")

	out, err = env.run(t, "help", "force")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "--force"))
}

func TestVersionFlag(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "templates version "))
}

func TestCompletionCmd(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "templates")

	_, err = env.run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestMissingConfigIsCreated(t *testing.T) {
	env := setupCLI(t)
	require.NoError(t, os.Remove(env.configPath))

	// ~/templates rarely exists on a test machine, so only the file is checked
	_, _ = env.run(t, "list")
	assert.True(t, testutil.FileExists(t, env.configPath))
}
