// Package procs provides access to the host process table.
package procs

import "context"

// Process is one observed process at one instant. It lives only for the
// duration of a single scan cycle and is never persisted as-is.
type Process struct {
	PID      int32
	Name     string
	Cmdline  []string
	Username string
}

// Source enumerates the currently running processes. Implementations are
// best-effort: a process that exits or denies access mid-enumeration is
// skipped, not an error.
type Source interface {
	Snapshot(ctx context.Context) ([]Process, error)
}
