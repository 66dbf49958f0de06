package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/truthscore/truthbench/internal/models"
	"github.com/truthscore/truthbench/internal/validation"
)

// ManualEntry is one row of a manual-answers file: a prompt plus the answers
// a human collected outside this tool, one per method.
type ManualEntry struct {
	Prompt          string              `json:"prompt"`
	Vanilla         string              `json:"vanilla,omitempty"`
	RAG             string              `json:"rag,omitempty"`
	SelfConsistency string              `json:"self_consistency,omitempty"`
	TruthScore      string              `json:"truthscore,omitempty"`
	GroundTruth     *models.GroundTruth `json:"ground_truth,omitempty"`
}

// LoadManualAnswers reads and schema-validates a manual-answers JSON file,
// returning one result entry per prompt. Empty answer strings leave the
// corresponding method slot nil.
func LoadManualAnswers(path string) ([]*models.ResultEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manual answers file: %w", err)
	}

	if errs := validation.ValidateManualBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("manual answers file %s is invalid:\n  %s", path, strings.Join(errs, "\n  "))
	}

	var entries []ManualEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing manual answers file: %w", err)
	}

	results := make([]*models.ResultEntry, 0, len(entries))
	for _, e := range entries {
		r := &models.ResultEntry{
			Prompt:      e.Prompt,
			GroundTruth: e.GroundTruth,
		}
		if e.Vanilla != "" {
			r.Vanilla = manualGeneration(models.MethodVanilla, e.Vanilla)
		}
		if e.RAG != "" {
			r.RAG = manualGeneration(models.MethodRAG, e.RAG)
		}
		if e.SelfConsistency != "" {
			r.SelfConsistency = manualGeneration(models.MethodSelfConsistency, e.SelfConsistency)
		}
		if e.TruthScore != "" {
			r.TruthScore = manualGeneration(models.MethodTruthScore, e.TruthScore)
		}
		results = append(results, r)
	}
	return results, nil
}

func manualGeneration(m models.Method, answer string) *models.Generation {
	return &models.Generation{
		Answer: answer,
		Method: m,
		Model:  "manual",
	}
}

// WriteManualTemplate writes a manual-answers skeleton seeded with every
// built-in prompt, for a human to fill in.
func WriteManualTemplate(path string) error {
	prompts := AllPrompts()
	entries := make([]ManualEntry, 0, len(prompts))
	for _, p := range prompts {
		entries = append(entries, ManualEntry{
			Prompt:      p,
			GroundTruth: &models.GroundTruth{},
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding template: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	return nil
}
