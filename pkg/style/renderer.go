package style

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/types"
	"github.com/mattn/go-isatty"
)

// Renderer defines the interface for rendering command results
type Renderer interface {
	RenderTree(report *types.TreeReport) string
	RenderBindings(result *types.VariablesResult) string
	RenderConfig(cfg *config.Config) string
	RenderUse(result *types.UseResult) string
	RenderApply(result *types.ApplyResult) string
	RenderError(err error) string
}

// NewRenderer picks a styled renderer when out is a terminal and a plain
// one otherwise
func NewRenderer(out *os.File) Renderer {
	if out != nil && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())) {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// palette abstracts the few visual decisions both renderers share
type palette struct {
	dir     func(string) string
	tag     func(string) string
	key     func(string) string
	muted   func(string) string
	path    func(string) string
	title   func(string) string
	success string
	skip    string
	warn    string
	failure func(string) string
}

func identity(s string) string { return s }

// TerminalRenderer implements Renderer with lipgloss styling
type TerminalRenderer struct {
	p palette
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{p: palette{
		dir:     func(s string) string { return DirStyle.Render(s) },
		tag:     func(s string) string { return TagStyle.Render(s) },
		key:     func(s string) string { return KeyStyle.Render(s) },
		muted:   func(s string) string { return MutedStyle.Render(s) },
		path:    func(s string) string { return PathStyle.Render(s) },
		title:   func(s string) string { return TitleStyle.Render(s) },
		success: SuccessIndicator,
		skip:    SkipIndicator,
		warn:    WarningIndicator,
		failure: func(s string) string { return ErrorStyle.Render(s) },
	}}
}

// PlainRenderer implements Renderer without any escape sequences, for pipes
// and files
type PlainRenderer struct {
	p palette
}

// NewPlainRenderer creates a renderer that emits undecorated text
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{p: palette{
		dir:     identity,
		tag:     identity,
		key:     identity,
		muted:   identity,
		path:    identity,
		title:   identity,
		success: "+",
		skip:    "-",
		warn:    "!",
		failure: identity,
	}}
}

func (r *TerminalRenderer) RenderTree(report *types.TreeReport) string {
	return renderTree(r.p, report)
}

func (r *TerminalRenderer) RenderBindings(result *types.VariablesResult) string {
	return renderBindings(r.p, result)
}

func (r *TerminalRenderer) RenderConfig(cfg *config.Config) string {
	return renderConfig(r.p, cfg)
}

func (r *TerminalRenderer) RenderUse(result *types.UseResult) string {
	return renderUse(r.p, result)
}

func (r *TerminalRenderer) RenderApply(result *types.ApplyResult) string {
	return renderApply(r.p, result)
}

func (r *TerminalRenderer) RenderError(err error) string {
	return renderError(r.p, err)
}

func (r *PlainRenderer) RenderTree(report *types.TreeReport) string {
	return renderTree(r.p, report)
}

func (r *PlainRenderer) RenderBindings(result *types.VariablesResult) string {
	return renderBindings(r.p, result)
}

func (r *PlainRenderer) RenderConfig(cfg *config.Config) string {
	return renderConfig(r.p, cfg)
}

func (r *PlainRenderer) RenderUse(result *types.UseResult) string {
	return renderUse(r.p, result)
}

func (r *PlainRenderer) RenderApply(result *types.ApplyResult) string {
	return renderApply(r.p, result)
}

func (r *PlainRenderer) RenderError(err error) string {
	return renderError(r.p, err)
}

func renderName(p palette, node types.TreeNode) string {
	switch {
	case node.IsDir:
		return p.dir(node.Name)
	case node.Tagged:
		return p.tag("["+node.Tag+"]") + node.DisplayName
	case node.IsVariables:
		return p.key(node.Name)
	default:
		return p.muted(node.Name)
	}
}

// renderTree prints one line per entry, children indented by two spaces and
// var bindings by four, each binding followed by a line continuation marker
func renderTree(p palette, report *types.TreeReport) string {
	if report == nil || len(report.Entries) == 0 {
		return p.muted("No templates found")
	}

	var result strings.Builder
	for _, entry := range report.Entries {
		result.WriteString(renderName(p, entry) + "\n")
		for _, child := range entry.Children {
			result.WriteString("  " + renderName(p, child) + "\n")
			if !child.IsVariables {
				continue
			}
			for _, b := range child.Bindings {
				result.WriteString(fmt.Sprintf("    %s=%s \\\n", p.key(b.Key), b.Value))
			}
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

func renderBindings(p palette, result *types.VariablesResult) string {
	if result == nil || len(result.Bindings) == 0 {
		return p.muted("No variables defined")
	}

	var out strings.Builder
	for _, b := range result.Bindings {
		out.WriteString(fmt.Sprintf("%s=%s\n", p.key(b.Key), b.Value))
	}
	return strings.TrimRight(out.String(), "\n")
}

func renderConfig(p palette, cfg *config.Config) string {
	if cfg == nil {
		return ""
	}

	lines := []string{
		fmt.Sprintf("%s %s", p.title("config:"), p.path(cfg.ConfigPath)),
		fmt.Sprintf("%s %s", p.key("templates_path:"), cfg.TemplatesPath),
		fmt.Sprintf("%s %s", p.key("clipboard_command:"), cfg.ClipboardCommand),
	}
	return strings.Join(lines, "\n")
}

func renderUse(p palette, result *types.UseResult) string {
	if result == nil {
		return ""
	}

	var out strings.Builder
	if result.DryRun {
		out.WriteString(p.muted("dry run, nothing written") + "\n")
	}
	for _, c := range result.Copied {
		if c.Skipped {
			out.WriteString(fmt.Sprintf("%s %s %s\n", p.skip, c.Template.DisplayName,
				p.muted("(exists, use --force to overwrite)")))
			continue
		}
		out.WriteString(fmt.Sprintf("%s %s -> %s\n", p.success, c.Template.DisplayName, p.path(c.Destination)))
	}
	for _, page := range result.NotFound {
		out.WriteString(fmt.Sprintf("%s %s %s\n", p.warn, page, p.muted("not found")))
	}
	return strings.TrimRight(out.String(), "\n")
}

func renderApply(p palette, result *types.ApplyResult) string {
	if result == nil {
		return ""
	}
	if result.DryRun {
		return result.Content
	}
	return fmt.Sprintf("%s %d of %d variables applied to %s",
		p.success, result.Applied, result.Bindings, p.path(result.Path))
}

func renderError(p palette, err error) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	var te *errors.TemplatesError
	if stderrors.As(err, &te) {
		message = te.Message
		if path, ok := te.Details["path"]; ok {
			message = fmt.Sprintf("%s: %v", message, path)
		}
	}
	return p.failure("Error: ") + message
}
