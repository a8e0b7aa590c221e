package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oversight-labs/aiwatch/internal/config"
	"github.com/oversight-labs/aiwatch/internal/install"
	"github.com/oversight-labs/aiwatch/internal/logging"
	"github.com/oversight-labs/aiwatch/internal/signature"
)

var (
	flagInstallInterval int
	flagInstallLogFile  string
	flagInstallSigFile  string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install aiwatch as a system service",
	Long: `Install aiwatch as a systemd service (Linux) or launchd daemon (macOS).

This command:
  1. Writes a config file to /etc/aiwatch/config.yaml
  2. Creates and enables a system service
  3. Starts the service immediately

The service runs 'aiwatch agent' with the configured interval and log path.`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().IntVar(&flagInstallInterval, "interval", config.DefaultIntervalSeconds, "Scan interval in seconds")
	installCmd.Flags().StringVar(&flagInstallLogFile, "logfile", "/var/lib/aiwatch/events.jsonl", "Event log path for the service")
	installCmd.Flags().StringVar(&flagInstallSigFile, "signatures", "", "YAML signature file for the service")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	logging.Setup(flagLogLevel)

	if flagInstallSigFile != "" {
		// Catch a broken rule file now rather than in the running service.
		if _, err := signature.LoadFile(flagInstallSigFile); err != nil {
			return err
		}
	}

	fmt.Println("Installing aiwatch...")

	cfg := install.InstallConfig{
		IntervalSeconds: flagInstallInterval,
		LogFile:         flagInstallLogFile,
		Signatures:      flagInstallSigFile,
	}

	if err := install.Install(cfg); err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	fmt.Println("aiwatch installed and running.")
	fmt.Printf("  Config:   %s\n", install.DefaultConfigFile)
	fmt.Printf("  Log file: %s\n", flagInstallLogFile)
	fmt.Printf("  Interval: %ds\n", flagInstallInterval)
	fmt.Println("\nCheck status with: aiwatch status")
	return nil
}
