package templates

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manage reusable file templates for your projects"
	MsgSetShort        = "Set the templates folder"
	MsgConfigShort     = "Print the current configuration and templates"
	MsgListShort       = "List the templates tree"
	MsgShowShort       = "Print a template"
	MsgCopyShort       = "Copy a template to the clipboard"
	MsgUseShort        = "Copy templates into a directory"
	MsgVarShort        = "List the variables of a project"
	MsgApplyShort      = "Apply a project's variables to a file"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgSettingPath      = "Setting templates path to %s\n"
	MsgSettingClipboard = "Setting clipboard command to %s\n"
	MsgCopied           = "Copied %s to the clipboard\n"
	MsgPromptPath       = "Templates folder:"
	MsgPromptPathHelp   = "An existing folder holding [page]filename templates"

	// Error messages
	MsgErrLoadConfig    = "failed to load config: %w"
	MsgErrSetConfig     = "failed to set config: %w"
	MsgErrListTemplates = "failed to list templates: %w"
	MsgErrShowTemplate  = "failed to show template: %w"
	MsgErrCopyTemplate  = "failed to copy template: %w"
	MsgErrUseTemplates  = "failed to use templates: %w"
	MsgErrShowVariables = "failed to show variables: %w"
	MsgErrApply         = "failed to apply variables: %w"
	MsgErrPathRequired  = "a templates path is required when not running in a terminal"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without writing them"
	MsgFlagForce     = "Overwrite existing files"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/templates-cli.json)"
	MsgFlagClipboard = "Clipboard program the copy command pipes into"
	MsgFlagFilter    = "Only list templates whose name matches this glob"
	MsgFlagRender    = "Render markdown templates for the terminal"
	MsgFlagPath      = "Directory to write the templates into"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/set-long.txt
	msgSetLongRaw string
	MsgSetLong    = strings.TrimSpace(msgSetLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimSpace(msgShowExampleRaw)

	//go:embed msgs/use-long.txt
	msgUseLongRaw string
	MsgUseLong    = strings.TrimSpace(msgUseLongRaw)

	//go:embed msgs/use-example.txt
	msgUseExampleRaw string
	MsgUseExample    = strings.TrimSpace(msgUseExampleRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimSpace(msgApplyExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
