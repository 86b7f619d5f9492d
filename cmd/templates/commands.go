package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/templates/internal/version"
	"github.com/arthur-debert/templates/pkg/cobrax/topics"
	"github.com/arthur-debert/templates/pkg/commands"
	"github.com/arthur-debert/templates/pkg/config"
	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/filesystem"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/paths"
	"github.com/arthur-debert/templates/pkg/style"
	"github.com/arthur-debert/templates/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	dryRun     bool
	force      bool
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(version.Info("templates"))

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&opts.force, "force", false, MsgFlagForce)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "setup",
		Title: "SETUP:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newCopyCmd(opts))
	rootCmd.AddCommand(newUseCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newVarCmd(opts))
	rootCmd.AddCommand(newApplyCmd(opts))
	rootCmd.AddCommand(newSetCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	if topicFS, err := fs.Sub(topicFiles, "topics"); err == nil {
		_, err := topics.InitializeWithOptions(rootCmd, topicFS, topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
		if err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

// loadConfig reads the config file named by --config, or the default one
func loadConfig(opts *globalOptions) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// newRenderer styles output only when the command writes to a terminal
func newRenderer(cmd *cobra.Command) style.Renderer {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return style.NewRenderer(f)
	}
	return style.NewPlainRenderer()
}

// optionalArg returns args[i] or "" when it was not given
func optionalArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

// templatesCompletion completes the page (first arg) and project (second
// arg) of show and copy
func templatesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := loadConfig(opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		report, err := commands.ListTemplates(commands.ListTemplatesOptions{
			Config: cfg,
			FS:     filesystem.NewOS(),
		})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var out []string
		switch len(args) {
		case 0:
			seen := make(map[string]bool)
			collect := func(node types.TreeNode) {
				if node.Tagged && !seen[node.Tag] {
					seen[node.Tag] = true
					out = append(out, node.Tag)
				}
			}
			for _, entry := range report.Entries {
				collect(entry)
				for _, child := range entry.Children {
					collect(child)
				}
			}
		case 1:
			for _, entry := range report.Entries {
				if entry.IsDir {
					out = append(out, entry.Name)
				}
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:               "show <page> [project]",
		Short:             MsgShowShort,
		Example:           MsgShowExample,
		GroupID:           "core",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: templatesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			result, err := commands.ShowTemplate(commands.ShowTemplateOptions{
				Config:  cfg,
				FS:      filesystem.NewOS(),
				Page:    args[0],
				Project: optionalArg(args, 1),
			})
			if err != nil {
				return fmt.Errorf(MsgErrShowTemplate, err)
			}

			content := result.Content
			if render {
				content = topics.NewGlamourRenderer().Render(content, filepath.Ext(result.Template.DisplayName))
			}
			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, MsgFlagRender)
	return cmd
}

func newCopyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "copy <page> [project]",
		Short:             MsgCopyShort,
		GroupID:           "core",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: templatesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			result, err := commands.CopyTemplate(commands.CopyTemplateOptions{
				Config:  cfg,
				FS:      filesystem.NewOS(),
				Page:    args[0],
				Project: optionalArg(args, 1),
			})
			if err != nil {
				return fmt.Errorf(MsgErrCopyTemplate, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgCopied, result.Template.DisplayName)
			return nil
		},
	}
}

func newUseCmd(opts *globalOptions) *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:     "use <project> <pages...>",
		Short:   MsgUseShort,
		Long:    MsgUseLong,
		Example: MsgUseExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			result, err := commands.UseTemplates(commands.UseTemplatesOptions{
				Config:      cfg,
				FS:          filesystem.NewOS(),
				Project:     args[0],
				Pages:       args[1:],
				Destination: destination,
				Force:       opts.force,
				DryRun:      opts.dryRun,
			})
			if err != nil {
				return fmt.Errorf(MsgErrUseTemplates, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cmd).RenderUse(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "path", "p", ".", MsgFlagPath)
	return cmd
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			report, err := commands.ListTemplates(commands.ListTemplatesOptions{
				Config: cfg,
				FS:     filesystem.NewOS(),
				Filter: filter,
			})
			if err != nil {
				return fmt.Errorf(MsgErrListTemplates, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cmd).RenderTree(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", MsgFlagFilter)
	return cmd
}

func newVarCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "var [project]",
		Short:   MsgVarShort,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			result, err := commands.ShowVariables(commands.ShowVariablesOptions{
				Config:  cfg,
				FS:      filesystem.NewOS(),
				Project: optionalArg(args, 0),
			})
			if err != nil {
				return fmt.Errorf(MsgErrShowVariables, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cmd).RenderBindings(result))
			return nil
		},
	}
}

func newApplyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "apply <file> [project]",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			result, err := commands.ApplyVariables(commands.ApplyVariablesOptions{
				Config:  cfg,
				FS:      filesystem.NewOS(),
				Project: optionalArg(args, 1),
				File:    args[0],
				DryRun:  opts.dryRun,
			})
			if err != nil {
				return fmt.Errorf(MsgErrApply, err)
			}

			if result.DryRun {
				fmt.Fprint(cmd.OutOrStdout(), result.Content)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cmd).RenderApply(result))
			return nil
		},
	}
}

func newSetCmd(opts *globalOptions) *cobra.Command {
	var clipboardCommand string

	cmd := &cobra.Command{
		Use:     "set [path]",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		GroupID: "setup",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templatesPath := optionalArg(args, 0)
			if templatesPath == "" {
				if !stdinIsTerminal() {
					return fmt.Errorf(MsgErrSetConfig, errors.New(errors.ErrInvalidInput, MsgErrPathRequired))
				}
				answer, err := promptTemplatesPath(paths.DefaultTemplatesPath)
				if err != nil {
					return fmt.Errorf(MsgErrSetConfig, err)
				}
				templatesPath = answer
			}

			configPath := opts.configPath
			if configPath == "" {
				configPath = config.DefaultPath()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgSettingPath, templatesPath)
			if strings.TrimSpace(clipboardCommand) != "" {
				fmt.Fprintf(out, MsgSettingClipboard, clipboardCommand)
			}

			cfg, err := commands.SetConfig(commands.SetConfigOptions{
				FS:               filesystem.NewOS(),
				ConfigPath:       configPath,
				TemplatesPath:    templatesPath,
				ClipboardCommand: clipboardCommand,
			})
			if err != nil {
				return fmt.Errorf(MsgErrSetConfig, err)
			}

			fmt.Fprintln(out, newRenderer(cmd).RenderConfig(cfg))
			return nil
		},
	}

	cmd.Flags().StringVar(&clipboardCommand, "clipboard", "", MsgFlagClipboard)
	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "setup",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			renderer := newRenderer(cmd)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderer.RenderConfig(cfg))
			fmt.Fprintln(out)

			report, err := commands.ListTemplates(commands.ListTemplatesOptions{
				Config: cfg,
				FS:     filesystem.NewOS(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrListTemplates, err)
			}

			fmt.Fprintln(out, renderer.RenderTree(report))
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
