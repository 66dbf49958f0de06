package scoring

import (
	"context"

	"github.com/truthscore/truthbench/internal/models"
)

// Scorer assesses the truthfulness of an answer to a question. The scoring
// algorithm itself is external; this package only defines the boundary and
// the clients that cross it.
type Scorer interface {
	Score(ctx context.Context, question, answer string) (*models.ScoreResult, error)
}
