package strategy

import (
	"context"
	"log/slog"

	"github.com/truthscore/truthbench/internal/models"
	"github.com/truthscore/truthbench/internal/scoring"
)

// RefusalTemplate replaces the base answer when the scorer decides REFUSE.
const RefusalTemplate = "I cannot provide a confident answer to this question based on available evidence."

// TruthGate decorates any base strategy with a truthfulness check. It holds
// no generation logic of its own: gating is orthogonal to generation method.
type TruthGate struct {
	base   Strategy
	scorer scoring.Scorer
}

// NewTruthGate wraps base so its answers are scored and conditionally
// replaced by a refusal.
func NewTruthGate(base Strategy, scorer scoring.Scorer) *TruthGate {
	return &TruthGate{base: base, scorer: scorer}
}

func (g *TruthGate) Generate(ctx context.Context, prompt string) (*models.Generation, error) {
	base, err := g.base.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	out := &models.Generation{
		Method:        models.MethodTruthScore,
		Model:         base.Model,
		BaseMethod:    base.Method,
		IsPlaceholder: base.IsPlaceholder,
		IsError:       base.IsError,
		ErrorMsg:      base.ErrorMsg,
		Usage:         base.Usage,
	}

	score, err := g.scorer.Score(ctx, prompt, base.Answer)
	if err != nil {
		// A scoring failure must not crash the pipeline: pass the base
		// answer through, marked unscored so it is counted apart from REFUSE.
		slog.Warn("scoring failed, result marked unscored", "error", err)
		out.Answer = base.Answer
		out.Unscored = true
		return out, nil
	}

	out.TruthScore = score.TruthScore
	out.Decision = score.Decision
	out.ScoreDetails = score

	if score.Decision == models.DecisionRefuse {
		// The raw base answer is deliberately not exposed anywhere in the
		// output; only the score details are retained for analysis.
		out.Answer = RefusalTemplate
		out.Refused = true
		return out, nil
	}

	out.Answer = base.Answer
	return out, nil
}
