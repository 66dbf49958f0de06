package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/truthscore/truthbench/internal/dataset"
	"github.com/truthscore/truthbench/internal/orchestration"
	"github.com/truthscore/truthbench/internal/reporting"
	"github.com/truthscore/truthbench/internal/scoring"
)

var (
	manualOutputDir string
	templatePath    string
	manualScorerURL string
)

func newManualCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manual [answers.json]",
		Short: "Score, annotate, and summarize manually collected answers",
		Long: `Score, annotate, and summarize answers collected outside this tool.

The input is a JSON file with one entry per prompt holding the answers a
human gathered for each method. Every non-empty truthscore answer is scored
and gated; without --scorer-url the built-in offline scorer is used. Use
--template to generate a skeleton file seeded with the built-in prompts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: manualCommandE,
	}

	cmd.Flags().StringVarP(&manualOutputDir, "output", "o", "results", "Output directory for result artifacts")
	cmd.Flags().StringVar(&templatePath, "template", "", "Write an answers skeleton to this path and exit")
	cmd.Flags().StringVar(&manualScorerURL, "scorer-url", "", "Scoring service endpoint (default: built-in offline scorer)")

	return cmd
}

func manualCommandE(cmd *cobra.Command, args []string) error {
	if templatePath != "" {
		if err := dataset.WriteManualTemplate(templatePath); err != nil {
			return err
		}
		fmt.Printf("Template written to %s\n", templatePath)
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("an answers file is required (or use --template)")
	}

	entries, err := dataset.LoadManualAnswers(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d manual entries from %s\n", len(entries), args[0])

	var scorer scoring.Scorer
	if manualScorerURL != "" {
		scorer = scoring.NewHTTPScorer(manualScorerURL, 30*time.Second)
	} else {
		scorer = scoring.NewStaticScorer()
	}
	orchestration.ScoreManualEntries(context.Background(), entries, scorer)

	orchestration.AnnotateResults(entries)
	summary := orchestration.SummarizeResults(entries)

	reporting.PrintSummaryTable(os.Stdout, summary)

	resultsPath, err := reporting.SaveResults(manualOutputDir, entries)
	if err != nil {
		return err
	}
	fmt.Printf("Results saved to %s\n", resultsPath)

	summaryPath, err := reporting.SaveSummary(manualOutputDir, summary)
	if err != nil {
		return err
	}
	fmt.Printf("Summary saved to %s\n", summaryPath)

	return nil
}
