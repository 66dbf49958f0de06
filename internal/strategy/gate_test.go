package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truthscore/truthbench/internal/generation"
	"github.com/truthscore/truthbench/internal/models"
	"github.com/truthscore/truthbench/internal/scoring"
)

func TestTruthGate_Generate(t *testing.T) {
	question := "Who was Jack the Ripper?"

	t.Run("accept passes the base answer through", func(t *testing.T) {
		base := NewDirect(generation.NewScriptedGenerator("It was never determined."), "test-model")
		scorer := scoring.NewStaticScorer()

		gate := NewTruthGate(base, scorer)
		got, err := gate.Generate(context.Background(), question)
		require.NoError(t, err)

		require.Equal(t, "It was never determined.", got.Answer)
		require.Equal(t, models.MethodTruthScore, got.Method)
		require.Equal(t, models.MethodVanilla, got.BaseMethod)
		require.Equal(t, models.DecisionAccept, got.Decision)
		require.Equal(t, 0.6, got.TruthScore)
		require.False(t, got.Refused)
		require.NotNil(t, got.ScoreDetails)
	})

	t.Run("refuse replaces the answer with the exact template", func(t *testing.T) {
		base := NewDirect(generation.NewScriptedGenerator("A confident fabrication."), "test-model")
		scorer := scoring.NewStaticScorer().SetResult(question, models.ScoreResult{
			TruthScore: 0.1,
			Decision:   models.DecisionRefuse,
		})

		gate := NewTruthGate(base, scorer)
		got, err := gate.Generate(context.Background(), question)
		require.NoError(t, err)

		require.Equal(t, "I cannot provide a confident answer to this question based on available evidence.", got.Answer)
		require.True(t, got.Refused)
		require.Equal(t, models.DecisionRefuse, got.Decision)

		// The raw base answer must not leak anywhere in the result.
		require.NotContains(t, got.Answer, "fabrication")
		require.NotNil(t, got.ScoreDetails)
	})

	t.Run("qualified passes through like accept", func(t *testing.T) {
		base := NewDirect(generation.NewScriptedGenerator("Probably unknowable."), "test-model")
		scorer := scoring.NewStaticScorer().SetResult(question, models.ScoreResult{
			TruthScore: 0.45,
			Decision:   models.DecisionQualified,
		})

		gate := NewTruthGate(base, scorer)
		got, err := gate.Generate(context.Background(), question)
		require.NoError(t, err)
		require.Equal(t, "Probably unknowable.", got.Answer)
		require.False(t, got.Refused)
	})

	t.Run("scorer failure marks the result unscored", func(t *testing.T) {
		base := NewDirect(generation.NewScriptedGenerator("Some answer."), "test-model")
		scorer := scoring.NewStaticScorer()
		scorer.FailNext()

		gate := NewTruthGate(base, scorer)
		got, err := gate.Generate(context.Background(), question)
		require.NoError(t, err)

		require.True(t, got.Unscored)
		require.False(t, got.Refused)
		require.Equal(t, "Some answer.", got.Answer)
		require.Nil(t, got.ScoreDetails)
	})

	t.Run("carries base error state", func(t *testing.T) {
		gen := generation.NewScriptedGenerator("unused")
		gen.FailAt(0, context.DeadlineExceeded)
		base := NewDirect(gen, "test-model")

		gate := NewTruthGate(base, scoring.NewStaticScorer())
		got, err := gate.Generate(context.Background(), question)
		require.NoError(t, err)

		require.True(t, got.IsError)
		require.Equal(t, models.MethodTruthScore, got.Method)
		require.Equal(t, models.MethodVanilla, got.BaseMethod)
	})
}
