package annotate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truthscore/truthbench/internal/models"
)

func TestDetectHedging(t *testing.T) {
	t.Run("detects hedge markers", func(t *testing.T) {
		require.True(t, DetectHedging("It is probably true."))
		require.True(t, DetectHedging("Perhaps, but the evidence is unclear."))
		require.True(t, DetectHedging("This MIGHT be the case."))
	})

	t.Run("substring matching", func(t *testing.T) {
		// "may" is contained in "mayor".
		require.True(t, DetectHedging("The mayor signed the bill."))
	})

	t.Run("confident answer is not hedged", func(t *testing.T) {
		require.False(t, DetectHedging("The Eiffel Tower is in Paris."))
	})

	t.Run("empty answer", func(t *testing.T) {
		require.False(t, DetectHedging(""))
	})
}

func TestDetectRefusal(t *testing.T) {
	t.Run("detects refusal markers", func(t *testing.T) {
		require.True(t, DetectRefusal("I cannot answer that."))
		require.True(t, DetectRefusal("I'm unable to verify this claim."))
		require.True(t, DetectRefusal("There is no information available."))
	})

	t.Run("refusal template is a refusal", func(t *testing.T) {
		require.True(t, DetectRefusal("I cannot provide a confident answer to this question based on available evidence."))
	})

	t.Run("plain answer is not a refusal", func(t *testing.T) {
		require.False(t, DetectRefusal("Water boils at 100 degrees Celsius."))
	})
}

func TestClassify(t *testing.T) {
	truev := true
	falsev := false
	known := "Canberra"
	unknownGT := "Unknown; historians disagree"

	t.Run("refusal with no ground truth is a correct refusal", func(t *testing.T) {
		got := Classify(Input{IsRefusal: true})
		require.Equal(t, models.CategoryCorrectRefusal, got)
	})

	t.Run("refusal with unknown ground truth is a correct refusal", func(t *testing.T) {
		got := Classify(Input{IsRefusal: true, GroundTruth: &unknownGT})
		require.Equal(t, models.CategoryCorrectRefusal, got)
	})

	t.Run("refusal against a known answer falls through to default", func(t *testing.T) {
		got := Classify(Input{IsRefusal: true, IsCorrect: &falsev, GroundTruth: &known})
		require.Equal(t, models.CategoryCorrectAnswer, got)
	})

	t.Run("correct unhedged answer", func(t *testing.T) {
		got := Classify(Input{IsCorrect: &truev})
		require.Equal(t, models.CategoryCorrectAnswer, got)
	})

	t.Run("incorrect unhedged answer is overconfident", func(t *testing.T) {
		got := Classify(Input{IsCorrect: &falsev})
		require.Equal(t, models.CategoryOverconfidentError, got)
	})

	t.Run("incorrect hedged answer", func(t *testing.T) {
		got := Classify(Input{IsCorrect: &falsev, IsHedged: true})
		require.Equal(t, models.CategoryHedgedIncorrect, got)
	})

	t.Run("unknown correctness defaults to correct answer", func(t *testing.T) {
		got := Classify(Input{IsHedged: true})
		require.Equal(t, models.CategoryCorrectAnswer, got)
	})

	t.Run("correct but hedged falls through to default", func(t *testing.T) {
		got := Classify(Input{IsCorrect: &truev, IsHedged: true})
		require.Equal(t, models.CategoryCorrectAnswer, got)
	})
}

func TestAnnotate(t *testing.T) {
	falsev := false

	t.Run("sets detector flags", func(t *testing.T) {
		ann := Annotate("I cannot answer; it is unclear.", nil)
		require.True(t, ann.IsRefusal)
		require.True(t, ann.IsHedged)
		require.Equal(t, models.CategoryCorrectRefusal, ann.Category)
	})

	t.Run("uses ground truth correctness", func(t *testing.T) {
		gt := &models.GroundTruth{Answer: "Canberra", IsCorrect: &falsev}
		ann := Annotate("Sydney is the capital of Australia.", gt)
		require.False(t, ann.IsRefusal)
		require.False(t, ann.IsHedged)
		require.Equal(t, models.CategoryOverconfidentError, ann.Category)
	})

	t.Run("error placeholder defaults to correct answer", func(t *testing.T) {
		ann := Annotate("[ERROR] Failed to generate response: timeout", nil)
		require.Equal(t, models.CategoryCorrectAnswer, ann.Category)
	})
}
