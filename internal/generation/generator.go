package generation

import (
	"context"

	"github.com/truthscore/truthbench/internal/models"
)

// Generator produces an answer for a prompt. Implementations wrap an external
// backend and are the only components allowed to perform generation I/O.
type Generator interface {
	// Generate performs one completion call. An error return means the
	// backend call itself failed; callers convert it to an error placeholder
	// rather than propagating it.
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion call.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Response is the backend's answer plus accounting metadata.
type Response struct {
	Text  string
	Usage models.TokenUsage

	// Placeholder is set by offline backends so strategies can substitute
	// their own simulated answer text.
	Placeholder bool
}
