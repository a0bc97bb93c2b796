// Package manifest defines the YAML install manifest the rig CLI executes:
// a named, ordered list of shell steps with optional confirmation gates.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the top-level install runbook.
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single installer action. Run is the shell command executed
// through the console; Confirm, when set, asks the user before running.
// MustSucceed steps abort the whole run on failure; other steps log the
// failure and continue.
type Step struct {
	Name        string `yaml:"name"`
	Run         string `yaml:"run"`
	Confirm     string `yaml:"confirm,omitempty"`
	MustSucceed bool   `yaml:"must_succeed,omitempty"`
}

// LoadFile reads and parses a manifest YAML file.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest file: %w", err)
	}
	return Load(data)
}

// Load parses manifest YAML bytes.
func Load(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest has no name")
	}
	if len(m.Steps) == 0 {
		return nil, fmt.Errorf("manifest has no steps")
	}
	for i, step := range m.Steps {
		if step.Run == "" {
			return nil, fmt.Errorf("step %d (%s) has no run command", i+1, step.Name)
		}
		if step.Name == "" {
			m.Steps[i].Name = step.Run
		}
	}
	return &m, nil
}
