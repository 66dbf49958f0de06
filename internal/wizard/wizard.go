// Package wizard collects a new experiment definition interactively and
// renders it as an experiment.yaml.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/truthscore/truthbench/internal/models"
)

// ExperimentDraft holds all fields collected during the interactive wizard.
type ExperimentDraft struct {
	Name        string
	Description string
	Backend     string
	Model       string
	Methods     []string
	Categories  []string
	Parallel    bool
	Samples     int
}

const experimentYAMLTemplate = `name: {{ .Name }}
{{- if .Description }}
description: {{ .Description }}
{{- end }}

config:
  backend: {{ .Backend }}
  model: {{ .Model }}
  timeout_seconds: 30
{{- if .Parallel }}
  parallel: true
  max_workers: 4
{{- end }}

strategies:
{{- range .Methods }}
  - kind: {{ . }}
{{- if eq . "self_consistency" }}
    config:
      samples: {{ $.Samples }}
{{- end }}
{{- end }}
{{- if .Categories }}

prompts:
  categories:
{{- range .Categories }}
    - {{ . }}
{{- end }}
{{- end }}
`

// RunExperimentWizard runs an interactive huh form to collect an experiment
// definition. If initialName is non-empty, it pre-populates the name field.
func RunExperimentWizard(in io.Reader, out io.Writer, initialName string) (*ExperimentDraft, error) {
	var (
		name       = initialName
		desc       string
		backend    string
		model      = "gpt-4o-mini"
		methods    []string
		categories []string
		parallel   bool
		samplesRaw = strconv.Itoa(5)
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Experiment name").
				Description("Used in output file names").
				Placeholder("my-experiment").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Placeholder("What is this experiment comparing?").
				Value(&desc),
			huh.NewSelect[string]().
				Title("Backend").
				Description("stub runs offline with placeholder answers").
				Options(
					huh.NewOption("openai", "openai"),
					huh.NewOption("stub", "stub"),
				).
				Value(&backend),
			huh.NewInput().
				Title("Model").
				Value(&model),
			huh.NewMultiSelect[string]().
				Title("Strategies").
				Options(
					huh.NewOption("vanilla", "vanilla").Selected(true),
					huh.NewOption("rag", "rag").Selected(true),
					huh.NewOption("self_consistency", "self_consistency").Selected(true),
					huh.NewOption("truthscore", "truthscore").Selected(true),
				).
				Value(&methods).
				Validate(func(vs []string) error {
					if len(vs) == 0 {
						return fmt.Errorf("select at least one strategy")
					}
					return nil
				}),
			huh.NewInput().
				Title("Self-consistency samples").
				Value(&samplesRaw).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("must be a positive integer")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Prompt categories").
				Description("Leave empty to use the full built-in dataset").
				Options(
					huh.NewOption("false_beliefs", "false_beliefs"),
					huh.NewOption("ambiguous", "ambiguous"),
					huh.NewOption("contradictory", "contradictory"),
					huh.NewOption("unanswerable", "unanswerable"),
					huh.NewOption("factual", "factual"),
				).
				Value(&categories),
			huh.NewConfirm().
				Title("Evaluate prompts in parallel?").
				Value(&parallel),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	samples, _ := strconv.Atoi(strings.TrimSpace(samplesRaw))

	return &ExperimentDraft{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(desc),
		Backend:     backend,
		Model:       strings.TrimSpace(model),
		Methods:     orderMethods(methods),
		Categories:  categories,
		Parallel:    parallel,
		Samples:     samples,
	}, nil
}

// GenerateExperimentYAML renders an experiment.yaml from the draft.
func GenerateExperimentYAML(draft *ExperimentDraft) (string, error) {
	tmpl, err := template.New("experiment").Parse(experimentYAMLTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, draft); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

// orderMethods normalizes the selection to canonical method order.
func orderMethods(selected []string) []string {
	chosen := make(map[string]bool, len(selected))
	for _, m := range selected {
		chosen[m] = true
	}
	var out []string
	for _, m := range models.AllMethods {
		if chosen[string(m)] {
			out = append(out, string(m))
		}
	}
	return out
}
