package ccsync

import (
	"fmt"

	"github.com/arthur-debert/ccsync/internal/version"
	"github.com/arthur-debert/ccsync/pkg/cobrax/topics"
	"github.com/arthur-debert/ccsync/pkg/commands"
	"github.com/arthur-debert/ccsync/pkg/config"
	"github.com/arthur-debert/ccsync/pkg/logging"
	"github.com/arthur-debert/ccsync/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	dryRun     bool
	root       string
	configFile string
	output     string
}

// options builds the shared command options. Only flags the user set
// become overrides so project files and the environment still apply.
func (g *globalFlags) options(cmd *cobra.Command) commands.Options {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("dry-run") {
		overrides["dry_run"] = g.dryRun
	}
	if cmd.Flags().Changed("stage") {
		stage, _ := cmd.Flags().GetBool("stage")
		overrides["stage.enabled"] = stage
	}
	if cmd.Flags().Changed("backend") {
		backend, _ := cmd.Flags().GetString("backend")
		overrides["stage.backend"] = backend
	}

	return commands.Options{
		Root:       g.root,
		ConfigFile: g.configFile,
		Overrides:  overrides,
	}
}

// renderer returns the renderer selected with --output
func (g *globalFlags) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.output)
	if err != nil {
		return nil, fmt.Errorf(MsgErrOutputFormat, err)
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func (g *globalFlags) isJSON() bool {
	format, err := ui.ParseFormat(g.output)
	return err == nil && format == ui.FormatJSON
}

// fail writes err as a JSON document when --output json is set so scripts
// always get parseable stdout; the error is still returned for the exit code
func (g *globalFlags) fail(renderer ui.Renderer, err error) error {
	if g.isJSON() {
		if rerr := renderer.RenderError(err); rerr != nil {
			log.Debug().Err(rerr).Msg("Failed to render error")
		}
	}
	return err
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "ccsync",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgSyncExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVarP(&flags.root, "root", "r", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", string(ui.FormatAuto), MsgFlagOutput)
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	addStageFlags(rootCmd)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSyncCmd(flags))
	rootCmd.AddCommand(newStageCmd(flags))
	rootCmd.AddCommand(newGenConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if err := topics.InitializeWithOptions(rootCmd, helpTopics(), topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func addStageFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("stage", false, MsgFlagStage)
	cmd.Flags().String("backend", config.BackendExec, MsgFlagBackend)
}

func runSync(cmd *cobra.Command, flags *globalFlags) error {
	renderer, err := flags.renderer(cmd)
	if err != nil {
		return err
	}

	report, err := commands.SyncProject(cmd.Context(), commands.SyncProjectOptions{
		Options: flags.options(cmd),
	})
	if err != nil {
		return flags.fail(renderer, err)
	}

	return renderer.RenderResult(report)
}

func newSyncCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, flags)
		},
	}
	addStageFlags(cmd)
	return cmd
}

func newStageCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stage",
		Short:   MsgStageShort,
		Long:    MsgStageLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := flags.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.StageOutput(cmd.Context(), commands.StageOutputOptions{
				Options: flags.options(cmd),
			})
			if err != nil {
				return flags.fail(renderer, err)
			}
			return renderer.RenderResult(result)
		},
	}
	cmd.Flags().String("backend", config.BackendExec, MsgFlagBackend)
	return cmd
}

func newGenConfigCmd(flags *globalFlags) *cobra.Command {
	var (
		format string
		write  bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := flags.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.GenConfig(commands.GenConfigOptions{
				Options: flags.options(cmd),
				Format:  format,
				Write:   write,
			})
			if err != nil {
				return flags.fail(renderer, err)
			}

			switch {
			case flags.isJSON():
				return renderer.RenderResult(result)
			case result.Written:
				return renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, result.Path))
			case write:
				return renderer.RenderMessage(fmt.Sprintf(MsgConfigExists, result.Path))
			default:
				_, err := fmt.Fprint(cmd.OutOrStdout(), result.Content)
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTOML, MsgFlagFormat)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
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

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doc.GenManTree(cmd.Root(), ManHeader(), dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	return cmd
}

// ManHeader is the header used for generated man pages
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "CCSYNC",
		Section: "1",
		Source:  "ccsync " + version.Version,
		Manual:  "ccsync manual",
	}
}
