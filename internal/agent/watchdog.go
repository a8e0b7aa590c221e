// Package agent implements the watchdog scan loop: enumerate processes,
// match signatures, deduplicate, and append events to the log.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/oversight-labs/aiwatch/internal/eventlog"
	"github.com/oversight-labs/aiwatch/internal/procs"
	"github.com/oversight-labs/aiwatch/internal/signature"
)

// Config holds the watchdog runtime parameters.
type Config struct {
	// Interval between scan cycles, measured from cycle end.
	Interval time.Duration
	// LogFile is the event log path ("" = eventlog.DefaultPath()).
	LogFile string
	// Hostname recorded in events ("" = os.Hostname()).
	Hostname string
	// Signatures in match order (nil = signature.Defaults()).
	Signatures []signature.Signature
	// Source of process snapshots (nil = procs.SystemSource{}).
	Source procs.Source
	// Debug echoes each newly logged match at info level.
	Debug bool
}

// Watchdog owns all mutable per-run state (the seen-set, the registry),
// so independent instances never interfere.
type Watchdog struct {
	cfg  Config
	seen *SeenSet
	log  *slog.Logger
}

// New creates a watchdog, filling unset config fields with defaults.
func New(cfg Config, logger *slog.Logger) *Watchdog {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.LogFile == "" {
		cfg.LogFile = eventlog.DefaultPath()
	}
	if cfg.Hostname == "" {
		cfg.Hostname, _ = os.Hostname()
	}
	if cfg.Signatures == nil {
		cfg.Signatures = signature.Defaults()
	}
	if cfg.Source == nil {
		cfg.Source = procs.SystemSource{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watchdog{
		cfg:  cfg,
		seen: NewSeenSet(),
		log:  logger.With("component", "agent"),
	}
}

// RunOnce performs a single scan cycle and returns the number of new events
// written. All of a cycle's writes share one append handle, released on
// every exit path. Timestamps are captured at emission time, not scan start.
func (w *Watchdog) RunOnce(ctx context.Context) (int, error) {
	snapshot, err := w.cfg.Source.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("scan: %w", err)
	}

	sink, err := eventlog.Open(w.cfg.LogFile)
	if err != nil {
		return 0, fmt.Errorf("scan: %w", err)
	}
	defer sink.Close()

	written := 0
	for _, p := range snapshot {
		for _, sig := range w.cfg.Signatures {
			if !sig.Matches(p.Name, p.Cmdline) {
				continue
			}
			if w.seen.Seen(p.PID, sig.Name) {
				continue
			}

			risk := sig.Risk
			if risk == "" {
				risk = signature.RiskUnknown
			}

			e := eventlog.Event{
				Timestamp:            time.Now().UTC(),
				Hostname:             w.cfg.Hostname,
				Username:             p.Username,
				PID:                  p.PID,
				ProcessName:          p.Name,
				Cmdline:              p.Cmdline,
				SignatureName:        sig.Name,
				SignatureDescription: sig.Description,
				Risk:                 risk,
				Category:             sig.Category,
				Version:              eventlog.SchemaVersion,
				Product:              eventlog.Product,
			}
			if err := sink.Append(e); err != nil {
				return written, fmt.Errorf("scan: %w", err)
			}

			w.seen.Mark(p.PID, sig.Name)
			written++

			if w.cfg.Debug {
				w.log.Info("match logged",
					"process", p.Name,
					"pid", p.PID,
					"signature", sig.Name,
					"risk", risk,
				)
			}
		}
	}
	return written, nil
}

// Run scans immediately, then repeats after a fixed sleep measured from
// cycle end (no drift correction — the effective cadence is interval plus
// cycle duration). A cycle failure is logged and the loop continues; only
// context cancellation stops it, and that stop is clean, not an error.
func (w *Watchdog) Run(ctx context.Context) error {
	for {
		n, err := w.RunOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.log.Error("scan cycle failed", "error", err)
		} else {
			w.log.Debug("scan cycle complete", "events", n, "tracked", w.seen.Len())
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(w.cfg.Interval):
		}
	}
}
