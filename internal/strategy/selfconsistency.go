package strategy

import (
	"context"
	"fmt"

	"github.com/truthscore/truthbench/internal/generation"
	"github.com/truthscore/truthbench/internal/models"
	"github.com/truthscore/truthbench/internal/pacing"
)

const (
	selfConsistencySystemPrompt = "You are a helpful assistant."

	// Samples use a higher temperature than direct decoding to diversify
	// the answers being voted over.
	samplingTemperature = 0.8

	// DefaultSampleCount is the number of samples per prompt.
	DefaultSampleCount = 5
)

// SelfConsistency issues N independent generations and selects the answer
// with the highest exact-match agreement.
type SelfConsistency struct {
	generator generation.Generator
	pacer     pacing.Pacer
	model     string
	samples   int
}

// NewSelfConsistency creates the self_consistency strategy. A sample count
// below one is a configuration error.
func NewSelfConsistency(g generation.Generator, p pacing.Pacer, model string, samples int) (*SelfConsistency, error) {
	if samples < 1 {
		return nil, fmt.Errorf("sample count must be at least 1, got %d", samples)
	}
	if p == nil {
		p = pacing.NewNopPacer()
	}
	return &SelfConsistency{generator: g, pacer: p, model: model, samples: samples}, nil
}

func (s *SelfConsistency) Generate(ctx context.Context, prompt string) (*models.Generation, error) {
	// Samples are collected in generation order; the slice index is the
	// sequence tag that makes the tie-break deterministic.
	samples := make([]string, 0, s.samples)
	var usage models.TokenUsage

	for i := 0; i < s.samples; i++ {
		if i > 0 {
			if err := s.pacer.Wait(ctx); err != nil {
				return errorGeneration(models.MethodSelfConsistency, s.model,
					fmt.Sprintf("[ERROR] Failed to generate self-consistency response: %v", err), err), nil
			}
		}

		resp, err := s.generator.Generate(ctx, generation.Request{
			System:      selfConsistencySystemPrompt,
			Prompt:      prompt,
			Temperature: samplingTemperature,
			MaxTokens:   defaultMaxTokens,
		})
		if err != nil {
			// All-or-nothing: a failed sample fails the whole aggregation
			// rather than voting over a partial set.
			return errorGeneration(models.MethodSelfConsistency, s.model,
				fmt.Sprintf("[ERROR] Failed to generate self-consistency response: %v", err), err), nil
		}

		if resp.Placeholder {
			return s.placeholderResult(prompt), nil
		}

		samples = append(samples, resp.Text)
		usage.Add(resp.Usage)
	}

	agreement := AgreementTable(samples)

	return &models.Generation{
		Answer:     SelectAnswer(samples, agreement),
		Method:     models.MethodSelfConsistency,
		Model:      s.model,
		Usage:      &usage,
		Samples:    samples,
		NumSamples: s.samples,
		Agreement:  agreement,
	}, nil
}

// placeholderResult simulates the full sample set without further backend
// calls when the offline backend is in use.
func (s *SelfConsistency) placeholderResult(prompt string) *models.Generation {
	samples := make([]string, 0, s.samples)
	for i := 0; i < s.samples; i++ {
		samples = append(samples, fmt.Sprintf("[PLACEHOLDER] Sample %d answer to: %s", i, prompt))
	}
	return &models.Generation{
		Answer:        samples[0],
		Method:        models.MethodSelfConsistency,
		Model:         s.model,
		IsPlaceholder: true,
		Samples:       samples,
		NumSamples:    s.samples,
	}
}

// AgreementTable counts exact string matches within the sample set. Grouping
// is case-sensitive and whitespace-preserving; no semantic similarity.
func AgreementTable(samples []string) map[string]int {
	table := make(map[string]int, len(samples))
	for _, sample := range samples {
		table[sample]++
	}
	return table
}

// SelectAnswer returns the sample with the highest agreement count. Walking
// the samples in generation order with a strictly-greater comparison makes
// the earliest of any tied answers win, deterministically.
func SelectAnswer(samples []string, agreement map[string]int) string {
	selected := ""
	best := 0
	for _, sample := range samples {
		if count := agreement[sample]; count > best {
			selected = sample
			best = count
		}
	}
	return selected
}
