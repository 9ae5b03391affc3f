package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/upmon/internal/errors"
)

// Command-specific flags
var (
	listOpts ListFlags

	checkOnce        bool
	checkMetricsAddr string

	endpointName string

	initForce          bool
	initNonInteractive bool
)

// listCmd opens the paginated monitor list. It is also what bare `upmon` runs.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the monitor list dashboard",
	Long: `Open the monitor list: status, name, URL, and downtime history for each
monitor, with pagination and an expandable drawer per row.

Examples:
  upmon list
  upmon list --page-size 25
  upmon list --status down --search api`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand(listOpts)
	},
}

// checkCmd probes every monitor and records the results.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run uptime checks against every monitor",
	Long: `Probe each monitor's URL and record the result in the store.

Without --once, checks repeat on check.interval until interrupted. Prometheus
metrics are served on --metrics-addr while the loop runs.

Examples:
  upmon check --once
  upmon check
  upmon check --metrics-addr :9109`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkCommand(cmd.Context(), CheckOptions{
			Once:        checkOnce,
			MetricsAddr: checkMetricsAddr,
		})
	},
}

// endpointCmd groups the monitor management subcommands.
var endpointCmd = &cobra.Command{
	Use:     "endpoint",
	Aliases: []string{"endpoints", "monitor"},
	Short:   "Manage monitored endpoints",
}

var endpointAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Start monitoring a URL",
	Long: `Add a monitor for the given http(s) URL.

Examples:
  upmon endpoint add https://example.com
  upmon endpoint add https://api.example.com/health --name "API"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return endpointAdd(cmd.OutOrStdout(), args[0], endpointName)
	},
}

var endpointRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Stop monitoring an endpoint and drop its history",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return endpointRemove(cmd.OutOrStdout(), args[0])
	},
}

var endpointListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print monitored endpoints",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return endpointList(cmd.OutOrStdout())
	},
}

// initCmd writes a starter config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .upmon.yaml in the current directory",
	Long: `Create a starter config file. Prompts for the store backend and dashboard
base URL when run in a terminal.

Examples:
  upmon init
  upmon init --non-interactive
  upmon init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for upmon.

Examples:
  # Bash
  upmon completion bash > /etc/bash_completion.d/upmon

  # Zsh
  upmon completion zsh > "${fpath[1]}/_upmon"

  # Fish
  upmon completion fish > ~/.config/fish/completions/upmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	addListFlags(listCmd, &listOpts)

	checkCmd.Flags().BoolVar(&checkOnce, "once", false, "run one round of checks and exit")
	checkCmd.Flags().StringVar(&checkMetricsAddr, "metrics-addr", ":9109", "address for the Prometheus /metrics endpoint (\"off\" to disable)")

	endpointAddCmd.Flags().StringVar(&endpointName, "name", "", "display name (defaults to the URL host)")
	endpointCmd.AddCommand(endpointAddCmd, endpointRemoveCmd, endpointListCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and write defaults")

	// Register all commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(endpointCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
