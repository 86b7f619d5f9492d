// Package commands provides the high-level command implementations for the
// templates CLI.
//
// Each command is implemented in its own subdirectory:
//   - show/         - ShowTemplate command
//   - copytemplate/ - CopyTemplate command
//   - use/          - UseTemplates command
//   - vars/         - ShowVariables and ApplyVariables commands
//   - list/         - ListTemplates command
//   - setconfig/    - SetConfig command
//   - internal/     - project scoping and template resolution shared by commands
//
// This file re-exports the command functions so callers only import one package.
package commands

import (
	"github.com/arthur-debert/templates/pkg/commands/copytemplate"
	"github.com/arthur-debert/templates/pkg/commands/list"
	"github.com/arthur-debert/templates/pkg/commands/setconfig"
	"github.com/arthur-debert/templates/pkg/commands/show"
	"github.com/arthur-debert/templates/pkg/commands/use"
	"github.com/arthur-debert/templates/pkg/commands/vars"
	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/types"
)

// ShowTemplate resolves a page and returns its content.
type ShowTemplateOptions = show.ShowTemplateOptions

func ShowTemplate(opts ShowTemplateOptions) (*types.ShowResult, error) {
	return show.ShowTemplate(opts)
}

// CopyTemplate resolves a page and writes its content to the clipboard.
type CopyTemplateOptions = copytemplate.CopyTemplateOptions

func CopyTemplate(opts CopyTemplateOptions) (*types.ShowResult, error) {
	return copytemplate.CopyTemplate(opts)
}

// UseTemplates copies several pages of a project into a destination.
type UseTemplatesOptions = use.UseTemplatesOptions

func UseTemplates(opts UseTemplatesOptions) (*types.UseResult, error) {
	return use.UseTemplates(opts)
}

// ShowVariables lists the bindings of a project's var file.
type ShowVariablesOptions = vars.ShowVariablesOptions

func ShowVariables(opts ShowVariablesOptions) (*types.VariablesResult, error) {
	return vars.ShowVariables(opts)
}

// ApplyVariables substitutes a project's bindings into a file.
type ApplyVariablesOptions = vars.ApplyVariablesOptions

func ApplyVariables(opts ApplyVariablesOptions) (*types.ApplyResult, error) {
	return vars.ApplyVariables(opts)
}

// ListTemplates builds the tree report of the templates root.
type ListTemplatesOptions = list.ListTemplatesOptions

func ListTemplates(opts ListTemplatesOptions) (*types.TreeReport, error) {
	return list.ListTemplates(opts)
}

// SetConfig validates and saves a new templates folder.
type SetConfigOptions = setconfig.SetConfigOptions

func SetConfig(opts SetConfigOptions) (*config.Config, error) {
	return setconfig.SetConfig(opts)
}
