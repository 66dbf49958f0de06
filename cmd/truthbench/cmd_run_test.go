package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truthscore/truthbench/internal/models"
)

func TestRunCommand_StubBackend(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "experiment.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(`
name: cli-test
config:
  backend: stub
  model: test-model
  timeout_seconds: 5
strategies:
  - kind: vanilla
  - kind: self_consistency
    config:
      samples: 2
  - kind: truthscore
prompts:
  categories:
    - factual
`), 0644))

	outDir := filepath.Join(dir, "out")
	root := newRootCommand()
	root.SetArgs([]string{"run", specPath, "-o", outDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(outDir, "experiment_results.json"))
	require.NoError(t, err)

	var results []*models.ResultEntry
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 10)
	require.True(t, results[0].Vanilla.IsPlaceholder)
	require.Len(t, results[0].SelfConsistency.Samples, 2)

	data, err = os.ReadFile(filepath.Join(outDir, "experiment_summary.json"))
	require.NoError(t, err)

	var summary models.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	require.Equal(t, 10, summary.TotalPrompts)
	require.Len(t, summary.ByMethod, 3)
}

func TestRunCommand_InvalidSpec(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "experiment.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte("description: no name\n"), 0644))

	root := newRootCommand()
	root.SetArgs([]string{"run", specPath})
	require.ErrorContains(t, root.Execute(), "invalid")
}

func TestManualCommand_ScoresByDefault(t *testing.T) {
	dir := t.TempDir()
	answersPath := filepath.Join(dir, "answers.json")
	require.NoError(t, os.WriteFile(answersPath, []byte(`[
		{
			"prompt": "Is the sky blue?",
			"vanilla": "Yes.",
			"truthscore": "Yes, under daylight."
		}
	]`), 0644))

	outDir := filepath.Join(dir, "out")
	root := newRootCommand()
	root.SetArgs([]string{"manual", answersPath, "-o", outDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(outDir, "experiment_results.json"))
	require.NoError(t, err)

	var results []*models.ResultEntry
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 1)

	// The truthscore answer must have been scored without any opt-in flag.
	ts := results[0].TruthScore
	require.Equal(t, models.DecisionAccept, ts.Decision)
	require.NotNil(t, ts.ScoreDetails)
	require.False(t, ts.Unscored)
	require.Equal(t, "Yes, under daylight.", ts.Answer)

	// Answers for other methods are annotated but never scored.
	require.Equal(t, models.Decision(""), results[0].Vanilla.Decision)
}

func TestManualCommand_Template(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")

	root := newRootCommand()
	root.SetArgs([]string{"manual", "--template", path})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 50)
}
