package signature

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk shape of a custom signature file.
type ruleFile struct {
	Signatures []Signature `yaml:"signatures"`
}

// LoadFile reads a YAML signature file and returns its rules in file order.
// Names must be unique and non-empty; an empty pattern or unknown match type
// is not an error — such a rule simply never matches.
func LoadFile(path string) ([]Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("signature: read %s: %w", path, err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("signature: parse %s: %w", path, err)
	}
	if len(f.Signatures) == 0 {
		return nil, fmt.Errorf("signature: %s contains no signatures", path)
	}

	seen := make(map[string]bool, len(f.Signatures))
	for i, sig := range f.Signatures {
		if sig.Name == "" {
			return nil, fmt.Errorf("signature: %s: rule %d has no name", path, i+1)
		}
		if seen[sig.Name] {
			return nil, fmt.Errorf("signature: %s: duplicate name %q", path, sig.Name)
		}
		seen[sig.Name] = true
	}

	return f.Signatures, nil
}
