package report

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/oversight-labs/aiwatch/internal/eventlog"
)

func evt(ts time.Time, risk, sig, user, host string) eventlog.Event {
	return eventlog.Event{
		Timestamp:     ts,
		Hostname:      host,
		Username:      user,
		SignatureName: sig,
		Risk:          risk,
	}
}

func sampleEvents() []eventlog.Event {
	base := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	return []eventlog.Event{
		evt(base, "medium", "ollama_local_llm", "jordan", "ws-1"),
		evt(base.Add(time.Minute), "high", "openai_api_call", "casey", "ws-1"),
		evt(base.Add(2*time.Minute), "high", "anthropic_api_call", "casey", "ws-2"),
		evt(base.Add(3*time.Minute), "high", "openai_api_call", "jordan", "ws-1"),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, 5)

	if s.Total != 0 {
		t.Errorf("total = %d, want 0", s.Total)
	}
	if s.TimeRange() != "unknown" {
		t.Errorf("time range = %q, want unknown", s.TimeRange())
	}
	if len(s.Risks) != 0 || len(s.Signatures) != 0 || len(s.Users) != 0 || len(s.Hosts) != 0 {
		t.Errorf("expected empty tables, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleEvents(), 5)

	if s.Total != 4 {
		t.Errorf("total = %d, want 4", s.Total)
	}

	wantRisks := []Count{{Key: "high", N: 3}, {Key: "medium", N: 1}}
	if !reflect.DeepEqual(s.Risks, wantRisks) {
		t.Errorf("risks = %+v, want %+v", s.Risks, wantRisks)
	}

	wantSigs := []Count{
		{Key: "openai_api_call", N: 2},
		{Key: "anthropic_api_call", N: 1},
		{Key: "ollama_local_llm", N: 1},
	}
	if !reflect.DeepEqual(s.Signatures, wantSigs) {
		t.Errorf("signatures = %+v, want %+v", s.Signatures, wantSigs)
	}

	if s.First != time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC) {
		t.Errorf("first = %v", s.First)
	}
	if s.Last != time.Date(2026, 8, 24, 9, 3, 0, 0, time.UTC) {
		t.Errorf("last = %v", s.Last)
	}
}

func TestSummarizeOrderInvariant(t *testing.T) {
	events := sampleEvents()
	forward := Summarize(events, 5)

	reversed := make([]eventlog.Event, len(events))
	for i, e := range events {
		reversed[len(events)-1-i] = e
	}
	backward := Summarize(reversed, 5)

	if !reflect.DeepEqual(forward, backward) {
		t.Errorf("summary depends on input order:\n forward %+v\nbackward %+v", forward, backward)
	}
}

func TestSummarizeTopN(t *testing.T) {
	s := Summarize(sampleEvents(), 2)

	if len(s.Signatures) != 2 {
		t.Fatalf("expected 2 signature rows, got %d", len(s.Signatures))
	}
	if s.Signatures[0].Key != "openai_api_call" {
		t.Errorf("top signature = %s, want openai_api_call", s.Signatures[0].Key)
	}
}

func TestSummarizeMissingFieldsAreUnknown(t *testing.T) {
	s := Summarize([]eventlog.Event{{}}, 5)

	for name, table := range map[string][]Count{
		"risks": s.Risks, "signatures": s.Signatures, "users": s.Users, "hosts": s.Hosts,
	} {
		if len(table) != 1 || table[0].Key != "unknown" {
			t.Errorf("%s = %+v, want single unknown row", name, table)
		}
	}
	if s.TimeRange() != "unknown" {
		t.Errorf("time range = %q, want unknown", s.TimeRange())
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	events := sampleEvents()
	first := Summarize(events, 5)
	second := Summarize(events, 5)

	if !reflect.DeepEqual(first, second) {
		t.Error("summarizing the same events twice produced different output")
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Summarize(sampleEvents(), 5))
	out := buf.String()

	for _, want := range []string{
		"Total events : 4",
		"By risk:",
		"By signature:",
		"By user:",
		"By host:",
		"high",
		"openai_api_call",
		"2026-08-24T09:00:00Z",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Summarize(nil, 5))
	out := buf.String()

	if !strings.Contains(out, "Total events : 0") {
		t.Errorf("expected zero total, got:\n%s", out)
	}
	if !strings.Contains(out, "Time range   : unknown") {
		t.Errorf("expected unknown time range, got:\n%s", out)
	}
	if !strings.Contains(out, "(none)") {
		t.Errorf("expected (none) placeholder rows, got:\n%s", out)
	}
}

func TestWriteRaw(t *testing.T) {
	var buf bytes.Buffer
	events := sampleEvents()
	if err := WriteRaw(&buf, events); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(events) {
		t.Fatalf("expected %d lines, got %d", len(events), len(lines))
	}
	if !strings.Contains(lines[0], `"signature_name":"ollama_local_llm"`) {
		t.Errorf("unexpected first line: %s", lines[0])
	}
}
