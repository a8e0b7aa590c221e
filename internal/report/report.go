// Package report aggregates the event log into frequency summaries.
// All operations are read-only and idempotent.
package report

import (
	"sort"
	"time"

	"github.com/oversight-labs/aiwatch/internal/eventlog"
)

// Count is one row of a frequency table.
type Count struct {
	Key string
	N   int
}

// Summary is the aggregate view of a set of events.
type Summary struct {
	Total      int
	First      time.Time // zero if no event carries a timestamp
	Last       time.Time
	Risks      []Count
	Signatures []Count
	Users      []Count
	Hosts      []Count
}

// counter tallies string keys.
type counter struct {
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if key == "" {
		key = "unknown"
	}
	c.counts[key]++
}

// top returns up to n rows sorted by count descending, ties broken by key.
// The lexical tie-break keeps tables invariant to input line order.
func (c *counter) top(n int) []Count {
	rows := make([]Count, 0, len(c.counts))
	for key, count := range c.counts {
		rows = append(rows, Count{Key: key, N: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].N != rows[j].N {
			return rows[i].N > rows[j].N
		}
		return rows[i].Key < rows[j].Key
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// Summarize computes the total, observed time range, and top-N frequency
// tables for risk, signature, user, and host. Rerunning over the same
// events yields an identical summary regardless of input order.
func Summarize(events []eventlog.Event, topN int) Summary {
	risks := newCounter()
	sigs := newCounter()
	users := newCounter()
	hosts := newCounter()

	var first, last time.Time
	for _, e := range events {
		risks.add(e.Risk)
		sigs.add(e.SignatureName)
		users.add(e.Username)
		hosts.add(e.Hostname)

		if e.Timestamp.IsZero() {
			continue
		}
		if first.IsZero() || e.Timestamp.Before(first) {
			first = e.Timestamp
		}
		if last.IsZero() || e.Timestamp.After(last) {
			last = e.Timestamp
		}
	}

	return Summary{
		Total:      len(events),
		First:      first,
		Last:       last,
		Risks:      risks.top(topN),
		Signatures: sigs.top(topN),
		Users:      users.top(topN),
		Hosts:      hosts.top(topN),
	}
}

// TimeRange renders the observed range, or "unknown" when no event carried
// a parseable timestamp.
func (s Summary) TimeRange() string {
	if s.First.IsZero() {
		return "unknown"
	}
	return s.First.Format(time.RFC3339) + "  ->  " + s.Last.Format(time.RFC3339)
}
