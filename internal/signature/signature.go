// Package signature defines the behavioral rules the watchdog matches
// processes against, and the matching itself.
package signature

import "strings"

// MatchType selects which process field a signature's pattern is tested against.
type MatchType string

const (
	// MatchProcessName tests the pattern against the process name.
	MatchProcessName MatchType = "process_name_contains"
	// MatchCmdline tests the pattern against the space-joined command line.
	MatchCmdline MatchType = "cmdline_contains"
)

// Risk levels carried on signatures and propagated to logged events.
const (
	RiskLow     = "low"
	RiskMedium  = "medium"
	RiskHigh    = "high"
	RiskUnknown = "unknown"
)

// Signature is a single immutable matching rule.
type Signature struct {
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description" json:"description"`
	MatchType   MatchType `yaml:"match_type" json:"match_type"`
	Pattern     string    `yaml:"pattern" json:"pattern"`
	Risk        string    `yaml:"risk" json:"risk"`
	Category    string    `yaml:"category" json:"category"`
}

// Matches reports whether the signature matches a process with the given
// name and command line. Matching is case-insensitive substring containment.
// A signature with an empty pattern or an unrecognized match type never
// matches (fails closed); missing fields are treated as empty, never a fault.
func (s Signature) Matches(name string, cmdline []string) bool {
	pattern := strings.ToLower(s.Pattern)
	if pattern == "" {
		return false
	}

	switch s.MatchType {
	case MatchProcessName:
		return strings.Contains(strings.ToLower(name), pattern)
	case MatchCmdline:
		joined := strings.ToLower(strings.Join(cmdline, " "))
		return strings.Contains(joined, pattern)
	default:
		return false
	}
}
