package generation

import (
	"context"
	"fmt"
	"sync"

	"github.com/truthscore/truthbench/internal/models"
)

// ScriptedGenerator replays a fixed sequence of answers, optionally injecting
// failures at specific call indices. It exists for tests and dry runs.
type ScriptedGenerator struct {
	mu      sync.Mutex
	answers []string
	failAt  map[int]error
	calls   int
}

// NewScriptedGenerator creates a generator that returns the given answers in
// order, cycling when exhausted.
func NewScriptedGenerator(answers ...string) *ScriptedGenerator {
	return &ScriptedGenerator{
		answers: answers,
		failAt:  map[int]error{},
	}
}

// FailAt makes the n-th call (zero-based) return err instead of an answer.
func (s *ScriptedGenerator) FailAt(n int, err error) *ScriptedGenerator {
	s.failAt[n] = err
	return s
}

// Calls reports how many times Generate has been invoked.
func (s *ScriptedGenerator) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *ScriptedGenerator) Generate(ctx context.Context, req Request) (*Response, error) {
	s.mu.Lock()
	n := s.calls
	s.calls++
	s.mu.Unlock()

	if err, ok := s.failAt[n]; ok {
		return nil, err
	}
	if len(s.answers) == 0 {
		return nil, fmt.Errorf("scripted generator has no answers")
	}
	return &Response{
		Text:  s.answers[n%len(s.answers)],
		Usage: models.TokenUsage{PromptTokens: 10, CompletionTokens: 10, TotalTokens: 20},
	}, nil
}
