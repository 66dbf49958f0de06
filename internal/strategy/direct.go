package strategy

import (
	"context"
	"fmt"

	"github.com/truthscore/truthbench/internal/generation"
	"github.com/truthscore/truthbench/internal/models"
)

const (
	directSystemPrompt = "You are a helpful assistant that provides accurate, factual answers."

	defaultTemperature = 0.7
	defaultMaxTokens   = 200
)

// Direct is plain decoding with no augmentation.
type Direct struct {
	generator generation.Generator
	model     string
}

// NewDirect creates the vanilla strategy.
func NewDirect(g generation.Generator, model string) *Direct {
	return &Direct{generator: g, model: model}
}

func (d *Direct) Generate(ctx context.Context, prompt string) (*models.Generation, error) {
	resp, err := d.generator.Generate(ctx, generation.Request{
		System:      directSystemPrompt,
		Prompt:      prompt,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	})
	if err != nil {
		return errorGeneration(models.MethodVanilla, d.model,
			fmt.Sprintf("[ERROR] Failed to generate response: %v", err), err), nil
	}

	if resp.Placeholder {
		return &models.Generation{
			Answer:        fmt.Sprintf("[PLACEHOLDER] This is a simulated vanilla LLM response to: %s", prompt),
			Method:        models.MethodVanilla,
			Model:         d.model,
			IsPlaceholder: true,
		}, nil
	}

	usage := resp.Usage
	return &models.Generation{
		Answer: resp.Text,
		Method: models.MethodVanilla,
		Model:  d.model,
		Usage:  &usage,
	}, nil
}
