package cmd

import (
	"github.com/bekkevard/chatgpt-toggle/internal/focus"
	"github.com/bekkevard/chatgpt-toggle/internal/output"
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.Flags().Bool("report", false, "Print the observed state and action taken")
}

// runToggle performs one toggle. It never returns an error: every failure
// is logged and the process exits 0.
func runToggle(cmd *cobra.Command, args []string) error {
	cfg, cfgErr := loadConfig(cmd)
	logger := newLogger(cfg)
	if cfgErr != nil {
		logger.Warn("using default config", "error", cfgErr)
	}

	provider, err := platform.NewProvider(cfg.Backend)
	if err != nil {
		logger.Warn("no platform backend", "backend", cfg.Backend, "error", err)
		return nil
	}

	ctx, cancel := commandContext(cmd, cfg.Timeout)
	defer cancel()

	res := focus.NewToggler(provider, cfg.FocusOptions(), logger).Toggle(ctx)

	if report, _ := cmd.Flags().GetBool("report"); report {
		if err := output.Fprint(cmd.OutOrStdout(), res); err != nil {
			logger.Warn("print result", "error", err)
		}
	}
	return nil
}
