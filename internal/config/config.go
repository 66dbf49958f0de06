// Package config holds the resolved runtime configuration for one experiment
// invocation: the loaded spec plus CLI-level overrides.
package config

import (
	"github.com/truthscore/truthbench/internal/models"
)

// defaultOutputDir is used when neither the spec nor the CLI names one.
const defaultOutputDir = "results"

// ExperimentConfig is an immutable view over the spec and its overrides.
// Construct with NewExperimentConfig; read through the accessor methods.
type ExperimentConfig struct {
	spec *models.ExperimentSpec

	specDir   string
	outputDir string
	backend   string
	model     string
	verbose   bool
}

// Option configures an ExperimentConfig.
type Option func(*ExperimentConfig)

// WithSpecDir records the directory the spec file was loaded from, so
// relative paths in the spec resolve against it.
func WithSpecDir(dir string) Option {
	return func(c *ExperimentConfig) {
		c.specDir = dir
	}
}

// WithOutputDir overrides the spec's output directory.
func WithOutputDir(dir string) Option {
	return func(c *ExperimentConfig) {
		c.outputDir = dir
	}
}

// WithBackend overrides the spec's backend selection.
func WithBackend(backend string) Option {
	return func(c *ExperimentConfig) {
		c.backend = backend
	}
}

// WithModel overrides the spec's model.
func WithModel(model string) Option {
	return func(c *ExperimentConfig) {
		c.model = model
	}
}

// WithVerbose enables verbose progress output.
func WithVerbose(v bool) Option {
	return func(c *ExperimentConfig) {
		c.verbose = v
	}
}

// NewExperimentConfig builds a config from a spec and options. A nil option
// panics; it is always a programming error at the call site.
func NewExperimentConfig(spec *models.ExperimentSpec, opts ...Option) *ExperimentConfig {
	c := &ExperimentConfig{spec: spec}
	for _, o := range opts {
		if o == nil {
			panic("config: nil Option passed to NewExperimentConfig")
		}
		o(c)
	}
	return c
}

// Spec returns the loaded experiment spec.
func (c *ExperimentConfig) Spec() *models.ExperimentSpec { return c.spec }

// SpecDir returns the directory the spec was loaded from.
func (c *ExperimentConfig) SpecDir() string { return c.specDir }

// Verbose reports whether verbose progress output is enabled.
func (c *ExperimentConfig) Verbose() bool { return c.verbose }

// OutputDir resolves the output directory: CLI override first, then the
// spec, then the default.
func (c *ExperimentConfig) OutputDir() string {
	if c.outputDir != "" {
		return c.outputDir
	}
	if c.spec != nil && c.spec.OutputDir != "" {
		return c.spec.OutputDir
	}
	return defaultOutputDir
}

// Backend resolves the backend: CLI override first, then the spec.
func (c *ExperimentConfig) Backend() string {
	if c.backend != "" {
		return c.backend
	}
	if c.spec != nil {
		return c.spec.Config.Backend
	}
	return ""
}

// Model resolves the model: CLI override first, then the spec.
func (c *ExperimentConfig) Model() string {
	if c.model != "" {
		return c.model
	}
	if c.spec != nil {
		return c.spec.Config.ModelID
	}
	return ""
}
