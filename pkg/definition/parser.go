package definition

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// bankFile is the on-disk structure for a condition definition
// bank. YAML and JSON are both accepted: yaml.v3 parses JSON as
// a subset of YAML.
type bankFile struct {
	Version    string       `json:"version" yaml:"version"`
	Conditions []Definition `json:"conditions" yaml:"conditions"`
}

// Parse reads a condition definition bank from raw bytes.
func Parse(data []byte) ([]Definition, error) {
	var bank bankFile
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf(
			"failed to parse condition definitions: %w", err,
		)
	}

	return bank.Conditions, nil
}

// ParseFile reads a condition definition bank from a .yaml,
// .yml, or .json file.
func ParseFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read definitions file %s: %w", path, err,
		)
	}

	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return defs, nil
}
