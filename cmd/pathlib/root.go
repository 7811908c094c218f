package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pathlib-go/pathlib/pkg/config"
	"github.com/pathlib-go/pathlib/pkg/errors"
	"github.com/pathlib-go/pathlib/pkg/flavor"
	"github.com/pathlib-go/pathlib/pkg/logging"
)

var (
	verbosity  int
	flavorName string
	outputFmt  string
	cfg        *config.Config

	rootCmd = &cobra.Command{
		Use:   "pathlib",
		Short: "Flavor-aware path parsing and matching",
		Long: `pathlib parses, normalizes, derives, compares and glob-matches POSIX-
and Windows-style path strings without touching the filesystem, plus a
small set of filesystem helpers built on the lexical core.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if flavorName == "" {
				flavorName = cfg.Flavor
			}
			if outputFmt == "" {
				outputFmt = cfg.OutputFormat
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. It is called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&flavorName, "flavor", "f", "",
		"Path flavor: posix, windows or native")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "",
		"Output format: text, yaml or toml")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(relativeCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(globCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// activeFlavor resolves the --flavor flag (or configured default).
func activeFlavor() (flavor.Flavor, error) {
	f, ok := flavor.FromName(flavorName)
	if !ok {
		return 0, errors.Newf(errors.ErrConfigParse, "unknown flavor %q", flavorName)
	}
	return f, nil
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(pathlib completion bash)

Zsh:
  $ pathlib completion zsh > "${fpath[1]}/_pathlib"

Fish:
  $ pathlib completion fish | source

PowerShell:
  PS> pathlib completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}
