package templates

import (
	"testing"

	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantTag     string
		wantDisplay string
	}{
		{"simple", "[readme]CONTRIBUTING.md", "readme", "CONTRIBUTING.md"},
		{"svelte route", "[ps]+page.server.ts", "ps", "+page.server.ts"},
		{"empty tag", "[]notes.txt", "", "notes.txt"},
		{"empty display name", "[readme]", "readme", ""},
		{"prefix before tag", "x[a]b", "a", "b"},
		{"second bracket pair stays in display", "[a]b[c]d", "a", "b[c]d"},
		{"spaces preserved", "[my page] file.md", "my page", " file.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, display, err := ParseTag(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, tag)
			assert.Equal(t, tt.wantDisplay, display)
		})
	}
}

func TestParseTag_Malformed(t *testing.T) {
	inputs := []string{
		"README.md",
		"var",
		"[readme.md",
		"readme]file",
		"]a[b",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, _, err := ParseTag(input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedTemplateName))
			assert.Equal(t, input, errors.GetErrorDetails(err)["name"])
		})
	}
}

func TestParseTag_RoundTrip(t *testing.T) {
	tags := []string{"a", "readme", "ps", "page-2", "ünï"}
	displays := []string{"x", "NOTES.md", "+page.server.ts", "", "with space.txt"}

	for _, tag := range tags {
		for _, display := range displays {
			gotTag, gotDisplay, err := ParseTag("[" + tag + "]" + display)
			require.NoError(t, err)
			assert.Equal(t, tag, gotTag)
			assert.Equal(t, display, gotDisplay)
		}
	}
}
