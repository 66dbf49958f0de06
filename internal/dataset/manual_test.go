package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truthscore/truthbench/internal/models"
)

func TestLoadManualAnswers(t *testing.T) {
	t.Run("loads entries and skips empty answers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "answers.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
			{
				"prompt": "Is the sky blue?",
				"vanilla": "Yes.",
				"truthscore": "Yes, under daylight.",
				"ground_truth": {"answer": "Yes", "is_correct": true}
			},
			{
				"prompt": "Who was Jack the Ripper?",
				"rag": "Identity never established."
			}
		]`), 0644))

		entries, err := LoadManualAnswers(path)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		first := entries[0]
		require.Equal(t, "Is the sky blue?", first.Prompt)
		require.Equal(t, "Yes.", first.Vanilla.Answer)
		require.Equal(t, models.MethodVanilla, first.Vanilla.Method)
		require.Equal(t, "manual", first.Vanilla.Model)
		require.Nil(t, first.RAG)
		require.Nil(t, first.SelfConsistency)
		require.NotNil(t, first.GroundTruth)
		require.True(t, *first.GroundTruth.IsCorrect)

		second := entries[1]
		require.Nil(t, second.Vanilla)
		require.Equal(t, "Identity never established.", second.RAG.Answer)
		require.Nil(t, second.GroundTruth)
	})

	t.Run("rejects entries without a prompt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "answers.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"vanilla": "orphan answer"}]`), 0644))

		_, err := LoadManualAnswers(path)
		require.ErrorContains(t, err, "invalid")
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "answers.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"prompt": "p", "extra": true}]`), 0644))

		_, err := LoadManualAnswers(path)
		require.ErrorContains(t, err, "invalid")
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "answers.json")
		require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

		_, err := LoadManualAnswers(path)
		require.Error(t, err)
	})
}

func TestWriteManualTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, WriteManualTemplate(path))

	// The generated template must itself load cleanly.
	entries, err := LoadManualAnswers(path)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	require.Equal(t, AllPrompts()[0], entries[0].Prompt)
	require.Nil(t, entries[0].Vanilla)
}
