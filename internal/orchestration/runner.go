// Package orchestration runs experiments: it drives every configured strategy
// over the prompt set, annotates the answers, and aggregates the summary.
package orchestration

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/truthscore/truthbench/internal/annotate"
	"github.com/truthscore/truthbench/internal/models"
	"github.com/truthscore/truthbench/internal/scoring"
	"github.com/truthscore/truthbench/internal/strategy"
)

// ExperimentRunner orchestrates the evaluation of one experiment spec.
type ExperimentRunner struct {
	spec       *models.ExperimentSpec
	strategies []strategy.Named

	// Optional prompt → reference answer mapping.
	groundTruth map[string]*models.GroundTruth

	// Progress tracking
	progressMu sync.Mutex
	listeners  []ProgressListener
}

// ProgressListener receives progress updates.
type ProgressListener func(event ProgressEvent)

// EventType represents the type of progress event.
type EventType string

// EventType constants
const (
	EventExperimentStart    EventType = "experiment_start"
	EventExperimentComplete EventType = "experiment_complete"
	EventPromptStart        EventType = "prompt_start"
	EventPromptComplete     EventType = "prompt_complete"
	EventMethodComplete     EventType = "method_complete"
	EventAnnotateComplete   EventType = "annotate_complete"
)

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	EventType    EventType
	Prompt       string
	PromptNum    int
	TotalPrompts int
	Method       models.Method
	IsError      bool
	DurationMs   int64
}

// RunnerOption configures an ExperimentRunner.
type RunnerOption func(*ExperimentRunner)

// WithGroundTruth attaches reference answers keyed by prompt text.
func WithGroundTruth(gt map[string]*models.GroundTruth) RunnerOption {
	return func(r *ExperimentRunner) {
		r.groundTruth = gt
	}
}

// NewExperimentRunner creates a runner for the given spec and built strategies.
func NewExperimentRunner(spec *models.ExperimentSpec, strategies []strategy.Named, opts ...RunnerOption) *ExperimentRunner {
	r := &ExperimentRunner{
		spec:       spec,
		strategies: strategies,
		listeners:  []ProgressListener{},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// OnProgress registers a progress listener.
func (r *ExperimentRunner) OnProgress(listener ProgressListener) {
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.listeners = append(r.listeners, listener)
}

func (r *ExperimentRunner) emit(event ProgressEvent) {
	r.progressMu.Lock()
	listeners := make([]ProgressListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.progressMu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

// RunOutcome is everything a run produces.
type RunOutcome struct {
	Results []*models.ResultEntry
	Summary *models.Summary
}

// Run evaluates every prompt, annotates the results, and builds the summary.
// A backend failure never aborts the run; only a cancelled context does.
func (r *ExperimentRunner) Run(ctx context.Context, prompts []string) (*RunOutcome, error) {
	if len(prompts) == 0 {
		return nil, fmt.Errorf("no prompts to evaluate")
	}

	r.emit(ProgressEvent{EventType: EventExperimentStart, TotalPrompts: len(prompts)})
	start := time.Now()

	var (
		results []*models.ResultEntry
		err     error
	)
	if r.spec.Config.Concurrent {
		results, err = r.runParallel(ctx, prompts)
	} else {
		results, err = r.runSequential(ctx, prompts)
	}
	if err != nil {
		return nil, err
	}

	AnnotateResults(results)
	r.emit(ProgressEvent{EventType: EventAnnotateComplete, TotalPrompts: len(results)})

	summary := SummarizeResults(results)

	r.emit(ProgressEvent{
		EventType:    EventExperimentComplete,
		TotalPrompts: len(results),
		DurationMs:   time.Since(start).Milliseconds(),
	})

	return &RunOutcome{Results: results, Summary: summary}, nil
}

func (r *ExperimentRunner) runSequential(ctx context.Context, prompts []string) ([]*models.ResultEntry, error) {
	results := make([]*models.ResultEntry, len(prompts))
	for i, prompt := range prompts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results[i] = r.evaluateAt(ctx, prompt, i, len(prompts))
	}
	return results, nil
}

func (r *ExperimentRunner) runParallel(ctx context.Context, prompts []string) ([]*models.ResultEntry, error) {
	workers := r.spec.Config.Workers
	if workers < 1 {
		workers = 4
	}

	// Results land at the prompt's own index so output order always matches
	// input order regardless of completion order.
	results := make([]*models.ResultEntry, len(prompts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, prompt := range prompts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.evaluateAt(gctx, prompt, i, len(prompts))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ExperimentRunner) evaluateAt(ctx context.Context, prompt string, num, total int) *models.ResultEntry {
	r.emit(ProgressEvent{
		EventType:    EventPromptStart,
		Prompt:       prompt,
		PromptNum:    num + 1,
		TotalPrompts: total,
	})
	start := time.Now()

	entry := r.EvaluatePrompt(ctx, prompt)

	r.emit(ProgressEvent{
		EventType:    EventPromptComplete,
		Prompt:       prompt,
		PromptNum:    num + 1,
		TotalPrompts: total,
		DurationMs:   time.Since(start).Milliseconds(),
	})
	return entry
}

// EvaluatePrompt runs every configured strategy against one prompt. Each
// strategy call gets its own timeout so one stuck backend call cannot stall
// the whole run.
func (r *ExperimentRunner) EvaluatePrompt(ctx context.Context, prompt string) *models.ResultEntry {
	entry := &models.ResultEntry{Prompt: prompt}
	if gt, ok := r.groundTruth[prompt]; ok {
		entry.GroundTruth = gt
	}

	timeout := time.Duration(r.spec.Config.TimeoutSec) * time.Second

	for _, s := range r.strategies {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		gen, err := s.Strategy.Generate(callCtx, prompt)
		cancel()

		if err != nil {
			// Strategies convert backend failures to placeholders themselves;
			// an error here means the call never completed (cancellation).
			slog.Error("strategy failed", "method", s.Method, "error", err)
			gen = &models.Generation{
				Answer:        fmt.Sprintf("[ERROR] Failed to generate response: %v", err),
				Method:        s.Method,
				Model:         r.spec.Config.ModelID,
				IsPlaceholder: true,
				IsError:       true,
				ErrorMsg:      err.Error(),
			}
		}
		entry.SetGeneration(s.Method, gen)

		r.emit(ProgressEvent{
			EventType: EventMethodComplete,
			Prompt:    prompt,
			Method:    s.Method,
			IsError:   gen.IsError,
		})
	}
	return entry
}

// AnnotateResults classifies every non-empty answer in the result set.
// Entries with no answer for a method simply get no annotation for that
// method.
func AnnotateResults(results []*models.ResultEntry) {
	for _, entry := range results {
		for _, m := range models.AllMethods {
			gen := entry.Generation(m)
			if gen == nil || gen.Answer == "" {
				continue
			}
			if entry.Annotations == nil {
				entry.Annotations = make(map[models.Method]*models.Annotation)
			}
			ann := annotate.Annotate(gen.Answer, entry.GroundTruth)
			entry.Annotations[m] = &ann
		}
	}
}

// SummarizeResults cross-tabulates the annotated results. Every method and
// category cell present in the run is initialized to zero so consumers never
// need missing-key handling. Error and unscored generations are tallied
// separately but still carry a category, so per-method counts sum to the
// number of annotated prompts.
func SummarizeResults(results []*models.ResultEntry) *models.Summary {
	summary := &models.Summary{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		TotalPrompts: len(results),
		ByMethod:     make(map[models.Method]map[models.OutcomeCategory]int),
		ByCategory:   make(map[models.OutcomeCategory]map[models.Method]int),
		Errors:       make(map[models.Method]int),
		Unscored:     make(map[models.Method]int),
	}

	methods := methodsPresent(results)
	for _, m := range methods {
		summary.ByMethod[m] = make(map[models.OutcomeCategory]int, len(models.AllCategories))
		for _, c := range models.AllCategories {
			summary.ByMethod[m][c] = 0
		}
	}
	for _, c := range models.AllCategories {
		summary.ByCategory[c] = make(map[models.Method]int, len(methods))
		for _, m := range methods {
			summary.ByCategory[c][m] = 0
		}
	}

	for _, entry := range results {
		for _, m := range methods {
			gen := entry.Generation(m)
			if gen == nil {
				continue
			}
			if gen.IsError {
				summary.Errors[m]++
			}
			if gen.Unscored {
				summary.Unscored[m]++
			}
			ann, ok := entry.Annotations[m]
			if !ok {
				continue
			}
			summary.ByMethod[m][ann.Category]++
			summary.ByCategory[ann.Category][m]++
		}
	}

	return summary
}

// methodsPresent returns the methods that produced at least one generation,
// in canonical reporting order.
func methodsPresent(results []*models.ResultEntry) []models.Method {
	seen := make(map[models.Method]bool)
	for _, entry := range results {
		for _, m := range models.AllMethods {
			if entry.Generation(m) != nil {
				seen[m] = true
			}
		}
	}
	out := make([]models.Method, 0, len(seen))
	for _, m := range models.AllMethods {
		if seen[m] {
			out = append(out, m)
		}
	}
	return out
}

// ScoreManualEntries applies the truth gate to manually collected answers:
// each non-empty truthscore answer is scored and, on a REFUSE decision,
// replaced by the refusal template. Scoring failures mark the entry unscored
// and keep the original answer.
func ScoreManualEntries(ctx context.Context, entries []*models.ResultEntry, scorer scoring.Scorer) {
	for _, entry := range entries {
		gen := entry.TruthScore
		if gen == nil || gen.Answer == "" {
			continue
		}

		score, err := scorer.Score(ctx, entry.Prompt, gen.Answer)
		if err != nil {
			slog.Warn("scoring failed, result marked unscored", "prompt", entry.Prompt, "error", err)
			gen.Unscored = true
			continue
		}

		gen.TruthScore = score.TruthScore
		gen.Decision = score.Decision
		gen.ScoreDetails = score

		if score.Decision == models.DecisionRefuse {
			gen.Answer = strategy.RefusalTemplate
			gen.Refused = true
		}
	}
}
