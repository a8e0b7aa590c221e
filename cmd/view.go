package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/oversight-labs/aiwatch/internal/eventlog"
	"github.com/oversight-labs/aiwatch/internal/report"
)

var (
	flagViewLogFile string
	flagTop         int
	flagShowEvents  bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Summarize the event log",
	Long: `Read the watchdog event log and print a summary: total events, the
observed time range, and top-N frequency tables by risk, signature, user,
and host. Malformed log lines are skipped.

The viewer is read-only and safe to run while an agent is writing.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagViewLogFile, "logfile", "", "Event log path (default: ~/.aiwatch/events.jsonl)")
	viewCmd.Flags().IntVar(&flagTop, "top", 5, "Number of top items per frequency table")
	viewCmd.Flags().BoolVar(&flagShowEvents, "show-events", false, "Also print each event as JSON")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	path := flagViewLogFile
	if path == "" {
		path = eventlog.DefaultPath()
	}

	fmt.Printf("Reading events from: %s\n", path)

	events, err := eventlog.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		// Absent log is an empty log, not a failure.
		fmt.Printf("Log file does not exist: %s\n", path)
	}

	report.Render(os.Stdout, report.Summarize(events, flagTop))

	if flagShowEvents && len(events) > 0 {
		fmt.Println("---------- Raw events ----------")
		if err := report.WriteRaw(os.Stdout, events); err != nil {
			return err
		}
	}
	return nil
}
