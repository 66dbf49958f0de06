package scoring

import (
	"context"
	"fmt"
	"sync"

	"github.com/truthscore/truthbench/internal/models"
)

// StaticScorer returns a fixed result for every question, with optional
// per-question overrides. It serves offline runs and tests.
type StaticScorer struct {
	mu        sync.Mutex
	def       models.ScoreResult
	overrides map[string]models.ScoreResult
	failNext  error
}

// NewStaticScorer creates a scorer whose default verdict accepts everything
// with a mid-range truth score.
func NewStaticScorer() *StaticScorer {
	return &StaticScorer{
		def: models.ScoreResult{
			EvidenceScore:      0.6,
			Consistency:        0.6,
			LanguageConfidence: 0.6,
			Coverage:           0.6,
			TruthScore:         0.6,
			Decision:           models.DecisionAccept,
		},
		overrides: map[string]models.ScoreResult{},
	}
}

// WithDefault replaces the default result.
func (s *StaticScorer) WithDefault(r models.ScoreResult) *StaticScorer {
	s.def = r
	return s
}

// SetResult fixes the result returned for a specific question.
func (s *StaticScorer) SetResult(question string, r models.ScoreResult) *StaticScorer {
	s.overrides[question] = r
	return s
}

// FailNext makes the next Score call return an error, simulating an
// unavailable scoring service.
func (s *StaticScorer) FailNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = fmt.Errorf("scorer unavailable")
}

func (s *StaticScorer) Score(ctx context.Context, question, answer string) (*models.ScoreResult, error) {
	s.mu.Lock()
	if err := s.failNext; err != nil {
		s.failNext = nil
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	if r, ok := s.overrides[question]; ok {
		return &r, nil
	}
	r := s.def
	return &r, nil
}
