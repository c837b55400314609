package cmd

import (
	"fmt"

	"github.com/bekkevard/chatgpt-toggle/internal/output"
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the target application's windows",
	Long:  "List windows front to back with their title, index and on-screen state. Defaults to the configured application.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("app", "", "Application name (default: configured app)")
	listCmd.Flags().Bool("on-screen", false, "Only list on-screen windows")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider(cfg.Backend)
	if err != nil {
		return err
	}
	if provider.Lister == nil {
		return fmt.Errorf("window listing not available on this platform")
	}

	appName, _ := cmd.Flags().GetString("app")
	if appName == "" {
		appName = cfg.App
	}
	onScreen, _ := cmd.Flags().GetBool("on-screen")

	ctx, cancel := commandContext(cmd, cfg.Timeout)
	defer cancel()

	windows, err := provider.Lister.ListWindows(ctx, platform.ListOptions{
		App:          appName,
		OnScreenOnly: onScreen,
	})
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), windows)
}
