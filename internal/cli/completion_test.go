package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a bare root command so tests don't depend on
// what the real root has registered.
func resetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upmon",
		Short: "Endpoint uptime monitor",
	}
}

func TestCompletionGeneration(t *testing.T) {
	tests := []struct {
		shell    string
		gen      func(*cobra.Command, *bytes.Buffer) error
		contains []string
	}{
		{
			shell:    "bash",
			gen:      func(c *cobra.Command, b *bytes.Buffer) error { return c.GenBashCompletion(b) },
			contains: []string{"# bash completion for upmon", "complete -o default -F __start_upmon upmon"},
		},
		{
			shell:    "zsh",
			gen:      func(c *cobra.Command, b *bytes.Buffer) error { return c.GenZshCompletion(b) },
			contains: []string{"#compdef upmon", "_upmon()"},
		},
		{
			shell:    "fish",
			gen:      func(c *cobra.Command, b *bytes.Buffer) error { return c.GenFishCompletion(b, true) },
			contains: []string{"fish completion for upmon", "complete -c upmon"},
		},
		{
			shell:    "powershell",
			gen:      func(c *cobra.Command, b *bytes.Buffer) error { return c.GenPowerShellCompletion(b) },
			contains: []string{"Register-ArgumentCompleter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.gen(resetRootCmd(), &buf))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestCompletionIncludesBuiltinCommands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rootCmd.GenBashCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "_upmon_root_command")
	assert.Contains(t, output, "_upmon_list()")
	assert.Contains(t, output, "_upmon_check()")
	assert.Contains(t, output, "_upmon_endpoint_add()")
	assert.Contains(t, output, "_upmon_completion()")
}

func TestCompletionBashSyntaxValid(t *testing.T) {
	cmd := resetRootCmd()
	cmd.AddCommand(&cobra.Command{Use: "list", Short: "List monitors"})
	cmd.AddCommand(&cobra.Command{Use: "check", Short: "Run checks"})

	var buf bytes.Buffer
	require.NoError(t, cmd.GenBashCompletion(&buf))
	output := buf.String()

	assert.Equal(t, strings.Count(output, "{"), strings.Count(output, "}"), "braces should be balanced")
	assert.Contains(t, output, "__start_upmon()")
}

func TestCompletionCommandValidArgs(t *testing.T) {
	assert.ElementsMatch(t, []string{"bash", "zsh", "fish", "powershell"}, completionCmd.ValidArgs)
}
