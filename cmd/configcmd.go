package cmd

import (
	"fmt"

	"github.com/bekkevard/chatgpt-toggle/internal/config"
	"github.com/bekkevard/chatgpt-toggle/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("path", false, "Print the config file path instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if showPath, _ := cmd.Flags().GetBool("path"); showPath {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), cfg)
}
