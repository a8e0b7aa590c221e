// Package eventlog defines the durable match-event record and its
// append-only JSON-lines store.
package eventlog

import "time"

const (
	// SchemaVersion tags every record; schema evolution is additive only.
	SchemaVersion = "v0.1"
	// Product identifies the writing agent in each record.
	Product = "aiwatch"
)

// Event is one persisted, immutable observation of a signature match.
// The command line is the only potentially sensitive field retained;
// file contents and prompt bodies are never captured.
type Event struct {
	Timestamp            time.Time `json:"timestamp_utc"`
	Hostname             string    `json:"hostname"`
	Username             string    `json:"username"`
	PID                  int32     `json:"pid"`
	ProcessName          string    `json:"process_name"`
	Cmdline              []string  `json:"cmdline"`
	SignatureName        string    `json:"signature_name"`
	SignatureDescription string    `json:"signature_description"`
	Risk                 string    `json:"risk"`
	Category             string    `json:"category"`
	Version              string    `json:"version"`
	Product              string    `json:"product"`
}
