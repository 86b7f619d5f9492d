package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"naming.md":          {Data: []byte("# Naming\n\nUse [page]filename")},
		"variables.txt":      {Data: []byte("KEY=value per line")},
		"option-dry-run.txt": {Data: []byte("Dry run prints instead of writing")},
		"nested/layout.txt":  {Data: []byte("nested topic")},
		"ignore.json":        {Data: []byte("{}")},
	}
}

func TestTopicManager_Load(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(topicFS())
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"layout", "naming", "option-dry-run", "variables"}, tm.ListTopics())

		topic, ok := tm.GetTopic("variables")
		require.True(t, ok)
		assert.Equal(t, "KEY=value per line", topic.Content)

		_, ok = tm.GetTopic("ignore")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(topicFS(), Options{Extensions: []string{".md"}})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"naming"}, tm.ListTopics())
	})

	t.Run("nil source", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.Load())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic_FlagStyle(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.Load())

	for _, name := range []string{"--dry-run", "-dry-run", "dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-dry-run", topic.Name)
	}
}

func TestTopicManager_WriteIndex(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	tm.WriteIndex(&buf, "templates")

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  layout\n  naming\n  variables\n")
	assert.Contains(t, out, "Option topics:\n  --dry-run\n")
	assert.Contains(t, out, "'templates help <topic>'")

	var empty bytes.Buffer
	New(nil).WriteIndex(&empty, "templates")
	assert.Equal(t, "No help topics available.\n", empty.String())
}

func TestInitialize_HelpCommand(t *testing.T) {
	root := &cobra.Command{Use: "templates"}
	root.AddCommand(&cobra.Command{Use: "show", Short: "Show a template", Run: func(*cobra.Command, []string) {}})

	_, err := Initialize(root, topicFS())
	require.NoError(t, err)

	run := func(args ...string) string {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return buf.String()
	}

	assert.Equal(t, "KEY=value per line", run("help", "variables"))
	assert.Contains(t, run("help", "topics"), "naming")
	assert.Contains(t, run("help", "show"), "Show a template")
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}

	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Heading\n\nSome *text*.", ".md")
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "text")
	assert.NotEqual(t, "# Heading\n\nSome *text*.", out)
}
