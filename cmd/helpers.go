package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/bekkevard/chatgpt-toggle/internal/config"
	"github.com/bekkevard/chatgpt-toggle/internal/logging"
	"github.com/spf13/cobra"
)

// loadConfig loads the config named by --config (or the default path) and
// applies flag overrides. On error the returned config is the defaults
// plus overrides, so callers that must not fail can still proceed.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	var err error
	if path == "" {
		path, err = config.DefaultPath()
	}

	cfg := config.Default()
	if err == nil {
		cfg, err = config.Load(path)
	}

	if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if backend, _ := rootCmd.PersistentFlags().GetString("backend"); backend != "" {
		cfg.Backend = backend
	}
	return cfg, err
}

// newLogger builds the logger for cfg. An invalid level falls back to warn.
func newLogger(cfg config.Config) *slog.Logger {
	level, err := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(level)
	if err != nil {
		logger.Warn("invalid log level", "level", cfg.LogLevel, "error", err)
	}
	return logger
}

// commandContext returns cmd's context bounded by timeout (0 = none).
func commandContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return withTimeout(ctx, timeout)
}

// withTimeout bounds ctx by timeout; 0 or less means no deadline.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
