package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oversight-labs/aiwatch/internal/eventlog"
)

// Render writes the human-readable summary block.
func Render(w io.Writer, s Summary) {
	fmt.Fprintln(w, "==============================================")
	fmt.Fprintln(w, " aiwatch: event log summary")
	fmt.Fprintln(w, "==============================================")
	fmt.Fprintf(w, "Total events : %d\n", s.Total)
	fmt.Fprintf(w, "Time range   : %s\n", s.TimeRange())
	fmt.Fprintln(w)

	renderTable(w, "By risk", s.Risks)
	renderTable(w, "By signature", s.Signatures)
	renderTable(w, "By user", s.Users)
	renderTable(w, "By host", s.Hosts)
}

func renderTable(w io.Writer, title string, rows []Count) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(rows) == 0 {
		fmt.Fprintln(w, "  (none)")
		fmt.Fprintln(w)
		return
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-30s %d\n", r.Key, r.N)
	}
	fmt.Fprintln(w)
}

// WriteRaw re-serializes every event, one JSON line each, for inspection.
func WriteRaw(w io.Writer, events []eventlog.Event) error {
	for _, e := range events {
		line, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("report: marshal event: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
