package procs

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// SystemSource reads the live OS process table via gopsutil.
type SystemSource struct{}

// Snapshot lists the current processes. Process sets are inherently racy:
// any process whose name can no longer be read (exited, access denied) is
// dropped from the result. A missing command line degrades to empty and a
// missing owner to "unknown".
func (SystemSource) Snapshot(ctx context.Context) ([]Process, error) {
	list, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("procs: list processes: %w", err)
	}

	out := make([]Process, 0, len(list))
	for _, p := range list {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}

		cmdline, err := p.CmdlineSliceWithContext(ctx)
		if err != nil {
			cmdline = nil
		}

		username, err := p.UsernameWithContext(ctx)
		if err != nil || username == "" {
			username = "unknown"
		}

		out = append(out, Process{
			PID:      p.Pid,
			Name:     name,
			Cmdline:  cmdline,
			Username: username,
		})
	}
	return out, nil
}
