package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Flags
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "aiwatch",
	Short: "AI usage watchdog for endpoints",
	Long: `aiwatch is a lightweight endpoint agent that polls running processes,
matches them against AI/LLM usage signatures (process name or command-line
substrings), and records matches to a local JSON-lines event log. Only
process metadata is logged — never file contents or prompt bodies.

The companion 'view' command summarizes the recorded event log.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: /etc/aiwatch/config.yaml when installed)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// Execute runs the root command.
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("aiwatch %s\n", version))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
