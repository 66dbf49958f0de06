// Package reporting renders the run summary and persists run artifacts.
package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/truthscore/truthbench/internal/models"
)

const (
	// ResultsFileName is the per-prompt results artifact.
	ResultsFileName = "experiment_results.json"

	// SummaryFileName is the aggregated summary artifact.
	SummaryFileName = "experiment_summary.json"
)

// PrintSummaryTable writes the method × category cross-tabulation as a fixed
// width console table. Category headers are truncated to keep the table
// inside 80 columns.
func PrintSummaryTable(w io.Writer, summary *models.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "EXPERIMENT RESULTS SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	header := fmt.Sprintf("\n%-20s ", "Method")
	cells := make([]string, 0, len(models.AllCategories))
	for _, c := range models.AllCategories {
		cells = append(cells, fmt.Sprintf("%-15s", truncate(string(c), 15)))
	}
	fmt.Fprintln(w, header+strings.Join(cells, " "))
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, m := range models.AllMethods {
		counts, ok := summary.ByMethod[m]
		if !ok {
			continue
		}
		row := fmt.Sprintf("%-20s ", string(m))
		for _, c := range models.AllCategories {
			row += fmt.Sprintf("%-15d ", counts[c])
		}
		fmt.Fprintln(w, row)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 80))
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// SaveResults writes the per-prompt results to dir and returns the file path.
func SaveResults(dir string, results []*models.ResultEntry) (string, error) {
	return saveJSON(dir, ResultsFileName, results)
}

// SaveSummary writes the aggregated summary to dir and returns the file path.
func SaveSummary(dir string, summary *models.Summary) (string, error) {
	return saveJSON(dir, SummaryFileName, summary)
}

func saveJSON(dir, name string, v any) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
