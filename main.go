// aiwatch — AI Usage Watchdog
//
// A single binary that runs on an endpoint, polls the process table at a
// fixed interval, and logs suspected AI/LLM usage to a local JSONL file.
// Matching is signature-based (process name or command-line substrings);
// only process metadata is recorded, never file contents or prompts.
//
// Usage:
//
//	aiwatch agent                    # continuous monitoring (default 10s)
//	aiwatch agent --once             # one scan cycle and exit
//	aiwatch view                     # summarize the event log
//	aiwatch install                  # run as a systemd/launchd service
package main

import "github.com/oversight-labs/aiwatch/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
