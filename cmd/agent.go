package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oversight-labs/aiwatch/internal/agent"
	"github.com/oversight-labs/aiwatch/internal/config"
	"github.com/oversight-labs/aiwatch/internal/eventlog"
	"github.com/oversight-labs/aiwatch/internal/logging"
	"github.com/oversight-labs/aiwatch/internal/signature"
)

var (
	flagInterval int
	flagLogFile  string
	flagSigFile  string
	flagOnce     bool
	flagDebug    bool
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Run the process watchdog",
	Long: `Run the watchdog agent: poll running processes at a fixed interval,
match them against the signature set, and append new matches to the event
log. A (pid, signature) pair is logged at most once per agent run.

By default the agent scans continuously until interrupted; --once performs
a single scan cycle and exits.`,
	RunE: runAgent,
}

func init() {
	agentCmd.Flags().IntVar(&flagInterval, "interval", config.DefaultIntervalSeconds, "Scan interval in seconds")
	agentCmd.Flags().StringVar(&flagLogFile, "logfile", "", "Event log path (default: ~/.aiwatch/events.jsonl)")
	agentCmd.Flags().StringVar(&flagSigFile, "signatures", "", "YAML signature file (default: built-in signatures)")
	agentCmd.Flags().BoolVar(&flagOnce, "once", false, "Run a single scan cycle and exit")
	agentCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log each new match as it is recorded")
	rootCmd.AddCommand(agentCmd)
}

func runAgent(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	level := flagLogLevel
	if cfg.LogLevel != "" && !cmd.Root().PersistentFlags().Changed("log-level") {
		level = cfg.LogLevel
	}
	if flagDebug {
		level = "debug"
	}
	logging.Setup(level)

	// Flags win over config file / environment.
	if cmd.Flags().Changed("interval") {
		cfg.IntervalSeconds = flagInterval
	}
	if cmd.Flags().Changed("logfile") {
		cfg.LogFile = flagLogFile
	}
	if cmd.Flags().Changed("signatures") {
		cfg.Signatures = flagSigFile
	}

	sigs := signature.Defaults()
	if cfg.Signatures != "" {
		sigs, err = signature.LoadFile(cfg.Signatures)
		if err != nil {
			return err
		}
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = eventlog.DefaultPath()
	}

	hostname, _ := os.Hostname()
	log := slog.Default()
	log.Info("aiwatch starting",
		"version", rootCmd.Version,
		"host", hostname,
		"logfile", logFile,
		"interval_seconds", cfg.IntervalSeconds,
		"signatures", len(sigs),
		"mode", modeName(flagOnce),
	)

	w := agent.New(agent.Config{
		Interval:   time.Duration(cfg.IntervalSeconds) * time.Second,
		LogFile:    logFile,
		Hostname:   hostname,
		Signatures: sigs,
		Debug:      flagDebug,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagOnce {
		n, err := w.RunOnce(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Scan complete. Events logged: %d\n", n)
		return nil
	}

	// Run returns nil on interrupt — a stop request, not an error.
	if err := w.Run(ctx); err != nil {
		return err
	}
	log.Info("aiwatch stopped")
	return nil
}

func modeName(once bool) string {
	if once {
		return "single-scan"
	}
	return "continuous"
}
