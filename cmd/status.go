package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oversight-labs/aiwatch/internal/config"
	"github.com/oversight-labs/aiwatch/internal/install"
	"github.com/oversight-labs/aiwatch/internal/logging"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show aiwatch service status",
	Long:  `Display the current state of the aiwatch service, config, and binary.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	logging.Setup(flagLogLevel)

	s := install.Status()

	fmt.Printf("Platform:   %s\n", s.Platform)
	fmt.Printf("Binary:     %s\n", valueOrNA(s.BinaryPath))
	fmt.Printf("Config:     %s\n", s.ConfigPath)
	fmt.Printf("Installed:  %s\n", boolStatus(s.Installed))
	fmt.Printf("Running:    %s\n", boolStatus(s.Running))

	// Show config summary if present
	if s.Installed {
		cfg, err := config.Load(install.DefaultConfigFile)
		if err == nil {
			fmt.Println()
			fmt.Println("Configuration:")
			fmt.Printf("  Interval:   %ds\n", cfg.IntervalSeconds)
			fmt.Printf("  Log file:   %s\n", valueOrNA(cfg.LogFile))
			fmt.Printf("  Signatures: %s\n", valueOrDefault(cfg.Signatures, "built-in"))
		}
	}

	// Show version
	fmt.Printf("\nVersion:    %s\n", rootCmd.Version)

	// Exit code 1 if not running (useful for scripts)
	if !s.Running {
		os.Exit(1)
	}
	return nil
}

func boolStatus(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func valueOrNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

func valueOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
