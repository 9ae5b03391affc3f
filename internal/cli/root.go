package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/upmon/internal/logger"
	"github.com/rileyhilliard/upmon/internal/ui"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "upmon",
	Short: "Endpoint uptime monitor with a terminal dashboard",
	Long: `upmon checks HTTP endpoints on a schedule, stores their history in Redis
(or a local YAML snapshot), and shows a paginated list of monitors with
their status, recent downtime, and per-location details.

Running upmon with no subcommand opens the monitor list.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.DisableColors()
		}
		if verbose {
			os.Setenv("UPMON_DEBUG", "1")
			logger.SetDefault(logger.NewEnvLogger(""))
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand(listOpts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .upmon.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	addListFlags(rootCmd, &listOpts)
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	reportError(os.Stderr, err)
	return err
}

// reportError prints err, plus a usage hint when cobra didn't recognize a command.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, err.Error())
	if !isUnknownCommandError(err) {
		return
	}
	if name := extractUnknownCommand(err); name != "" {
		fmt.Fprintf(w, "\n'%s' is not an upmon command. Run 'upmon --help' for usage.\n", name)
	}
}

// isUnknownCommandError reports whether err is cobra's unknown command or flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of `unknown command "x" for "upmon"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
