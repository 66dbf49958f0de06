// Package strategy implements the inference strategies under evaluation.
package strategy

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/truthscore/truthbench/internal/generation"
	"github.com/truthscore/truthbench/internal/models"
	"github.com/truthscore/truthbench/internal/pacing"
	"github.com/truthscore/truthbench/internal/scoring"
)

// Strategy is the uniform contract implemented by every inference variant.
type Strategy interface {
	// Generate produces one answer for the prompt. A failed backend call is
	// converted into an error placeholder Generation; the error return is
	// reserved for programmer mistakes so an orchestrator loop is never
	// interrupted by a single backend failure.
	Generate(ctx context.Context, prompt string) (*models.Generation, error)
}

// Named pairs a strategy with the method tag it reports under.
type Named struct {
	Method   models.Method
	Strategy Strategy
}

// Deps carries the collaborators strategies are built from. Backend
// availability is resolved once, here, by injecting either a live or a stub
// generator; strategies never probe the environment themselves.
type Deps struct {
	Generator generation.Generator
	Scorer    scoring.Scorer
	Retriever Retriever
	Pacer     pacing.Pacer
	Model     string
}

// Build constructs every configured strategy. Configuration faults (unknown
// kind, invalid sample count, missing collaborator) are fatal and reported
// before any evaluation starts.
func Build(configs []models.StrategyConfig, deps Deps) ([]Named, error) {
	if deps.Generator == nil {
		return nil, fmt.Errorf("no generator configured")
	}

	named := make([]Named, 0, len(configs))
	for _, cfg := range configs {
		s, err := create(cfg, deps)
		if err != nil {
			return nil, fmt.Errorf("building strategy %q: %w", cfg.Kind, err)
		}
		named = append(named, Named{Method: cfg.Kind, Strategy: s})
	}
	return named, nil
}

func create(cfg models.StrategyConfig, deps Deps) (Strategy, error) {
	switch cfg.Kind {
	case models.MethodVanilla:
		return NewDirect(deps.Generator, deps.Model), nil

	case models.MethodRAG:
		var v struct {
			TopK int `mapstructure:"top_k"`
		}
		if err := mapstructure.Decode(cfg.Parameters, &v); err != nil {
			return nil, err
		}
		retriever := deps.Retriever
		if retriever == nil {
			retriever = NewPlaceholderRetriever()
		}
		return NewContextAugmented(deps.Generator, retriever, deps.Model, v.TopK), nil

	case models.MethodSelfConsistency:
		v := struct {
			Samples int `mapstructure:"samples"`
		}{Samples: DefaultSampleCount}
		if err := mapstructure.Decode(cfg.Parameters, &v); err != nil {
			return nil, err
		}
		return NewSelfConsistency(deps.Generator, deps.Pacer, deps.Model, v.Samples)

	case models.MethodTruthScore:
		v := struct {
			Base models.Method `mapstructure:"base"`
		}{Base: models.MethodVanilla}
		if err := mapstructure.Decode(cfg.Parameters, &v); err != nil {
			return nil, err
		}
		if v.Base == models.MethodTruthScore {
			return nil, fmt.Errorf("truthscore cannot wrap itself")
		}
		if deps.Scorer == nil {
			return nil, fmt.Errorf("truthscore strategy requires a scorer")
		}
		base, err := create(models.StrategyConfig{Kind: v.Base}, deps)
		if err != nil {
			return nil, fmt.Errorf("building base strategy %q: %w", v.Base, err)
		}
		return NewTruthGate(base, deps.Scorer), nil

	default:
		return nil, fmt.Errorf("%q is not a valid strategy kind", cfg.Kind)
	}
}

// errorGeneration converts a backend failure into ordinary data so it flows
// through annotation and aggregation like any other answer.
func errorGeneration(method models.Method, model, answer string, err error) *models.Generation {
	return &models.Generation{
		Answer:        answer,
		Method:        method,
		Model:         model,
		IsPlaceholder: true,
		IsError:       true,
		ErrorMsg:      err.Error(),
	}
}
