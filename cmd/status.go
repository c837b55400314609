package cmd

import (
	"github.com/bekkevard/chatgpt-toggle/internal/focus"
	"github.com/bekkevard/chatgpt-toggle/internal/output"
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
	"github.com/spf13/cobra"
)

// StatusResult is the output of `status`.
type StatusResult struct {
	Backend  string            `yaml:"backend"  json:"backend"`
	Observed focus.Observation `yaml:"observed" json:"observed"`
	Action   focus.Action      `yaml:"action"   json:"action"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the toggle would do, without doing it",
	Long:  "Observe the target window and print the derived state and the action a toggle would take. No window commands are sent.",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	provider, err := platform.NewProvider(cfg.Backend)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd, cfg.Timeout)
	defer cancel()

	action, obs, err := focus.NewToggler(provider, cfg.FocusOptions(), logger).Plan(ctx)
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), StatusResult{
		Backend:  provider.Name,
		Observed: obs,
		Action:   action,
	})
}
