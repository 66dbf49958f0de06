package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/truthscore/truthbench/internal/models"
)

func TestGenerateExperimentYAML(t *testing.T) {
	t.Run("renders a loadable spec", func(t *testing.T) {
		draft := &ExperimentDraft{
			Name:        "demo",
			Description: "comparing strategies",
			Backend:     "stub",
			Model:       "test-model",
			Methods:     []string{"vanilla", "self_consistency", "truthscore"},
			Categories:  []string{"factual", "unanswerable"},
			Parallel:    true,
			Samples:     7,
		}

		content, err := GenerateExperimentYAML(draft)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "experiment.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		spec, err := models.LoadExperimentSpec(path)
		require.NoError(t, err)

		require.Equal(t, "demo", spec.Name)
		require.Equal(t, "stub", spec.Config.Backend)
		require.Equal(t, 30, spec.Config.TimeoutSec)
		require.True(t, spec.Config.Concurrent)
		require.Equal(t, 4, spec.Config.Workers)
		require.Len(t, spec.Strategies, 3)
		require.Equal(t, models.MethodSelfConsistency, spec.Strategies[1].Kind)
		require.Equal(t, 7, spec.Strategies[1].Parameters["samples"])
		require.Equal(t, []string{"factual", "unanswerable"}, spec.Prompts.Categories)
	})

	t.Run("omits empty sections", func(t *testing.T) {
		draft := &ExperimentDraft{
			Name:    "minimal",
			Backend: "openai",
			Model:   "gpt-4o-mini",
			Methods: []string{"vanilla"},
		}

		content, err := GenerateExperimentYAML(draft)
		require.NoError(t, err)
		require.NotContains(t, content, "description:")
		require.NotContains(t, content, "prompts:")
		require.NotContains(t, content, "parallel:")

		var spec models.ExperimentSpec
		require.NoError(t, yaml.Unmarshal([]byte(content), &spec))
		require.NoError(t, spec.Validate())
	})
}

func TestOrderMethods(t *testing.T) {
	got := orderMethods([]string{"truthscore", "vanilla", "rag"})
	require.Equal(t, []string{"vanilla", "rag", "truthscore"}, got)
}
