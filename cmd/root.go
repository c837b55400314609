package cmd

import (
	"fmt"
	"os"

	"github.com/bekkevard/chatgpt-toggle/internal/output"
	"github.com/bekkevard/chatgpt-toggle/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chatgpt-toggle",
	Short: "Toggle focus of the ChatGPT browser window",
	Long: `Toggle focus of the ChatGPT window in the Comet browser.

Run with no arguments (e.g. from a hotkey):
  - launches a ChatGPT window if none exists,
  - raises it if it is hidden or behind another window,
  - cycles to the next browser window if it is already in front,
  - hides the browser if it is the only window.

The toggle always exits 0; failures are logged to stderr.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (runToggle -> loadConfig -> rootCmd).
	rootCmd.RunE = runToggle
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/chatgpt-toggle/config.yaml)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("backend", "", "Platform backend: auto, darwin, sway (overrides config)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			// The bare toggle must not fail on presentation flags.
			if cmd == rootCmd {
				return nil
			}
			return err
		}
		output.OutputFormat = f
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
