// Package config loads the transform configuration: the concrete names
// of the synchronization variables plus the knobs the downstream passes
// read.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Round and Mbox name the two synchronization roles in the input
	// program. Both are required.
	Round string `yaml:"round"`
	Mbox  string `yaml:"mbox"`

	// Phase names the phase counter variable, used by the dead-code
	// elimination pass.
	Phase string `yaml:"phase"`

	// Labels annotate protocol steps for the extraction pass.
	Labels []string `yaml:"labels"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Round == "" {
		return nil, fmt.Errorf("config is missing required key %q", "round")
	}
	if cfg.Mbox == "" {
		return nil, fmt.Errorf("config is missing required key %q", "mbox")
	}
	return &cfg, nil
}
