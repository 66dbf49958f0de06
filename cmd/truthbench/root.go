package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "truthbench",
		Short: "TruthBench - compare answer-generation strategies for truthfulness",
		Long: `TruthBench runs controlled experiments comparing answer-generation
strategies (vanilla, RAG, self-consistency, truth-gated) over question sets,
annotates each answer for hedging and refusal behavior, and aggregates the
outcomes into a method-by-category summary.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newManualCommand())
	cmd.AddCommand(newInitCommand())
	cmd.AddCommand(newCheckCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
