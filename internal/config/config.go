// Package config loads YAML configuration for the prover, logging,
// and retrieval layers, merging a found file over built-in defaults —
// the same merge-over-defaults shape as the larger repository this
// module grew out of, scaled to three sections instead of a dozen.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/logging"
)

// Config is the top-level configuration document.
type Config struct {
	Prover    ProverConfig    `yaml:"prover"`
	Logging   LoggingConfig   `yaml:"logging"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
}

// ProverConfig mirrors prover.Config's YAML-facing fields.
type ProverConfig struct {
	MaxDepth int  `yaml:"max_depth"`
	Trace    bool `yaml:"trace"`
}

// LoggingConfig controls the categorized file logger.
type LoggingConfig struct {
	Debug        bool   `yaml:"debug"`
	WorkspaceDir string `yaml:"workspace_dir"`
}

// RetrievalConfig mirrors retrieval.Config's YAML-facing fields.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// DefaultConfig returns the built-in defaults: max depth 50, tracing
// and debug logging off, retrieval unbounded.
func DefaultConfig() *Config {
	return &Config{
		Prover: ProverConfig{
			MaxDepth: 50,
			Trace:    false,
		},
		Logging: LoggingConfig{
			Debug:        false,
			WorkspaceDir: ".kbproof",
		},
		Retrieval: RetrievalConfig{
			TopK: 0,
		},
	}
}

// Load reads path and unmarshals it over DefaultConfig. A missing
// file is not an error: Load returns the defaults unchanged, matching
// this module's "config is optional" posture.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// InitLogging wires cfg's logging section into the package-level
// logging.Initialize call.
func (c *Config) InitLogging() error {
	return logging.Initialize(c.Logging.WorkspaceDir, c.Logging.Debug)
}
