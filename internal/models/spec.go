package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExperimentSpec is a complete experiment definition loaded from YAML.
type ExperimentSpec struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Config      RunConfig        `yaml:"config"`
	Strategies  []StrategyConfig `yaml:"strategies"`
	Prompts     PromptSelection  `yaml:"prompts,omitempty"`
	GroundTruth string           `yaml:"ground_truth,omitempty"`
	OutputDir   string           `yaml:"output_dir,omitempty"`
}

// RunConfig controls execution behavior.
type RunConfig struct {
	Backend        string `yaml:"backend" json:"backend"`
	ModelID        string `yaml:"model" json:"model_id"`
	TimeoutSec     int    `yaml:"timeout_seconds" json:"timeout_sec"`
	Concurrent     bool   `yaml:"parallel,omitempty" json:"concurrent,omitempty"`
	Workers        int    `yaml:"max_workers,omitempty" json:"workers,omitempty"`
	PaceIntervalMS int    `yaml:"pace_interval_ms,omitempty" json:"pace_interval_ms,omitempty"`
	ScorerURL      string `yaml:"scorer_url,omitempty" json:"scorer_url,omitempty"`
}

// StrategyConfig defines one inference strategy to evaluate.
type StrategyConfig struct {
	Kind       Method         `yaml:"kind"`
	Parameters map[string]any `yaml:"config,omitempty"`
}

// PromptSelection picks the prompt set for a run. When File is empty the
// built-in datasets are used, optionally narrowed to Categories.
type PromptSelection struct {
	File       string   `yaml:"file,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
}

// LoadExperimentSpec loads a spec from a YAML file.
func LoadExperimentSpec(path string) (*ExperimentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec ExperimentSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}

// Validate checks the spec for configuration errors. These are the only
// fatal faults in the system; everything downstream degrades to error
// placeholders instead of aborting a run.
func (s *ExperimentSpec) Validate() error {
	if s.Config.TimeoutSec < 1 {
		return fmt.Errorf("timeout_seconds must be at least 1, got %d", s.Config.TimeoutSec)
	}
	if len(s.Strategies) == 0 {
		return fmt.Errorf("at least one strategy must be configured")
	}

	seen := map[Method]bool{}
	for _, sc := range s.Strategies {
		switch sc.Kind {
		case MethodVanilla, MethodRAG, MethodSelfConsistency, MethodTruthScore:
		default:
			return fmt.Errorf("%q is not a valid strategy kind", sc.Kind)
		}
		if seen[sc.Kind] {
			return fmt.Errorf("strategy %q configured twice", sc.Kind)
		}
		seen[sc.Kind] = true
	}

	switch s.Config.Backend {
	case "", "openai", "stub":
	default:
		return fmt.Errorf("unknown backend: %s", s.Config.Backend)
	}

	return nil
}
