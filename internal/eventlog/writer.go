package eventlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Writer appends event records to a JSON-lines file. One Writer is opened
// per scan cycle and closed at its end, so a write is visible to concurrent
// readers as soon as Append returns. The file is never truncated or seeked;
// line-atomicity of a single append is the only cross-writer guarantee.
type Writer struct {
	mu   sync.Mutex
	file *os.File
}

// DefaultPath returns the per-user default event log location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".aiwatch", "events.jsonl")
}

// Open opens (or creates) the event log at path for appending.
// The directory is created with 0700; the file with 0600.
func Open(path string) (*Writer, error) {
	if path == "" {
		path = DefaultPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("eventlog: create dir %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("eventlog: open %s: %w", path, err)
	}

	return &Writer{file: f}, nil
}

// Append serializes one event and writes it as a single line.
func (w *Writer) Append(e Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("eventlog: marshal: %w", err)
	}
	line = append(line, '\n')

	if _, err := w.file.Write(line); err != nil {
		return fmt.Errorf("eventlog: write: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}
