package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown with glamour. Other formats pass through.
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a path to a style file
	Width int    // word wrap width (0 = glamour default)
}

// NewGlamourRenderer creates a markdown renderer with style auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// IsMarkdown reports whether format is a markdown extension
func IsMarkdown(format string) bool {
	return format == ".md" || format == ".markdown"
}

// Render converts markdown to styled terminal output
func (r *GlamourRenderer) Render(content string, format string) string {
	if !IsMarkdown(format) {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
