package signature

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRuleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signatures.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write rule file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeRuleFile(t, `
signatures:
  - name: ollama_local_llm
    description: Local LLM runtime (Ollama)
    match_type: process_name_contains
    pattern: ollama
    risk: medium
    category: local_llm
  - name: internal_llm_gateway
    description: Calls to the internal model gateway
    match_type: cmdline_contains
    pattern: llm-gw.corp.example.com
    risk: high
    category: remote_llm
`)

	sigs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(sigs) != 2 {
		t.Fatalf("expected 2 signatures, got %d", len(sigs))
	}

	first := sigs[0]
	if first.Name != "ollama_local_llm" {
		t.Errorf("expected file order preserved, got %s first", first.Name)
	}
	if first.MatchType != MatchProcessName {
		t.Errorf("expected match type %s, got %s", MatchProcessName, first.MatchType)
	}
	if sigs[1].Risk != RiskHigh {
		t.Errorf("expected risk high, got %s", sigs[1].Risk)
	}
}

func TestLoadFileDuplicateName(t *testing.T) {
	path := writeRuleFile(t, `
signatures:
  - name: dup
    match_type: process_name_contains
    pattern: a
  - name: dup
    match_type: process_name_contains
    pattern: b
`)

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for duplicate signature name")
	} else if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFileMissingName(t *testing.T) {
	path := writeRuleFile(t, `
signatures:
  - match_type: process_name_contains
    pattern: a
`)

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unnamed rule")
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeRuleFile(t, "signatures: []\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for empty rule file")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
