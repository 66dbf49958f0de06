package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/truthscore/truthbench/internal/config"
	"github.com/truthscore/truthbench/internal/dataset"
	"github.com/truthscore/truthbench/internal/generation"
	"github.com/truthscore/truthbench/internal/models"
	"github.com/truthscore/truthbench/internal/orchestration"
	"github.com/truthscore/truthbench/internal/pacing"
	"github.com/truthscore/truthbench/internal/reporting"
	"github.com/truthscore/truthbench/internal/scoring"
	"github.com/truthscore/truthbench/internal/strategy"
	"github.com/truthscore/truthbench/internal/validation"
)

var (
	outputDir       string
	verbose         bool
	parallel        bool
	workers         int
	backendOverride string
	modelOverride   string
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <experiment.yaml>",
		Short: "Run a truthfulness experiment",
		Long: `Run a truthfulness experiment from a spec file.

The spec file defines the strategies to compare, the prompt set, and the
execution configuration. Each prompt is answered by every configured
strategy, annotated, and aggregated into a method-by-category summary.`,
		Args: cobra.ExactArgs(1),
		RunE: runCommandE,
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for result artifacts")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output with detailed progress")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Evaluate prompts concurrently")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of concurrent workers (default: 4, requires --parallel)")
	cmd.Flags().StringVar(&backendOverride, "backend", "", "Backend to use (overrides spec config): openai, stub")
	cmd.Flags().StringVar(&modelOverride, "model", "", "Model to use (overrides spec config)")

	return cmd
}

func runCommandE(cmd *cobra.Command, args []string) error {
	specPath := args[0]

	data, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("failed to read spec: %w", err)
	}
	if errs := validation.ValidateExperimentBytes(data); len(errs) > 0 {
		return fmt.Errorf("spec %s is invalid:\n  %s", specPath, strings.Join(errs, "\n  "))
	}

	spec, err := models.LoadExperimentSpec(specPath)
	if err != nil {
		return fmt.Errorf("failed to load spec: %w", err)
	}

	// CLI flags override spec config
	if parallel {
		spec.Config.Concurrent = true
	}
	if workers > 0 {
		spec.Config.Workers = workers
	}

	cfg := config.NewExperimentConfig(spec,
		config.WithSpecDir(filepath.Dir(specPath)),
		config.WithOutputDir(outputDir),
		config.WithBackend(backendOverride),
		config.WithModel(modelOverride),
		config.WithVerbose(verbose),
	)

	generator := buildGenerator(cfg)
	scorer := buildScorer(spec)

	var pacer pacing.Pacer
	if spec.Config.PaceIntervalMS > 0 {
		pacer = pacing.NewIntervalPacer(time.Duration(spec.Config.PaceIntervalMS) * time.Millisecond)
	}

	strategies, err := strategy.Build(spec.Strategies, strategy.Deps{
		Generator: generator,
		Scorer:    scorer,
		Pacer:     pacer,
		Model:     cfg.Model(),
	})
	if err != nil {
		return err
	}

	prompts, err := dataset.Select(resolvePromptSelection(spec.Prompts, cfg.SpecDir()))
	if err != nil {
		return err
	}

	var runnerOpts []orchestration.RunnerOption
	if spec.GroundTruth != "" {
		gt, err := dataset.LoadGroundTruth(resolvePath(spec.GroundTruth, cfg.SpecDir()))
		if err != nil {
			return err
		}
		runnerOpts = append(runnerOpts, orchestration.WithGroundTruth(gt))
	}

	runner := orchestration.NewExperimentRunner(spec, strategies, runnerOpts...)
	if verbose {
		runner.OnProgress(verboseProgressListener)
	} else {
		runner.OnProgress(simpleProgressListener)
	}

	fmt.Printf("Running experiment: %s\n", spec.Name)
	fmt.Printf("Backend: %s\n", effectiveBackend(cfg))
	fmt.Printf("Model: %s\n", cfg.Model())
	fmt.Printf("Prompts: %d\n", len(prompts))
	if spec.Config.Concurrent {
		w := spec.Config.Workers
		if w <= 0 {
			w = 4
		}
		fmt.Printf("Parallel: %d workers\n", w)
	}
	fmt.Println()

	outcome, err := runner.Run(context.Background(), prompts)
	if err != nil {
		return fmt.Errorf("experiment failed: %w", err)
	}

	reporting.PrintSummaryTable(os.Stdout, outcome.Summary)

	resultsPath, err := reporting.SaveResults(cfg.OutputDir(), outcome.Results)
	if err != nil {
		return err
	}
	fmt.Printf("Results saved to %s\n", resultsPath)

	summaryPath, err := reporting.SaveSummary(cfg.OutputDir(), outcome.Summary)
	if err != nil {
		return err
	}
	fmt.Printf("Summary saved to %s\n", summaryPath)

	return nil
}

// buildGenerator resolves backend availability once, up front. When the
// openai backend is requested but no API key is present, the run degrades to
// the stub backend with a warning instead of failing, so experiments remain
// runnable offline.
func buildGenerator(cfg *config.ExperimentConfig) generation.Generator {
	switch cfg.Backend() {
	case "stub":
		return generation.NewStubGenerator()
	default:
		g, err := generation.NewOpenAIGenerator(cfg.Model())
		if err != nil {
			fmt.Printf("Warning: %v; using stub backend with placeholder responses\n", err)
			return generation.NewStubGenerator()
		}
		return g
	}
}

func buildScorer(spec *models.ExperimentSpec) scoring.Scorer {
	if spec.Config.ScorerURL != "" {
		timeout := time.Duration(spec.Config.TimeoutSec) * time.Second
		return scoring.NewHTTPScorer(spec.Config.ScorerURL, timeout)
	}
	return scoring.NewStaticScorer()
}

func effectiveBackend(cfg *config.ExperimentConfig) string {
	if cfg.Backend() == "" {
		return "openai"
	}
	return cfg.Backend()
}

func resolvePromptSelection(sel models.PromptSelection, baseDir string) models.PromptSelection {
	sel.File = resolvePath(sel.File, baseDir)
	return sel
}

// resolvePath anchors relative spec paths at the spec's own directory.
func resolvePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
