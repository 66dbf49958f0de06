package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/truthscore/truthbench/internal/wizard"
)

var (
	initOutputPath string
	initForce      bool
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a new experiment definition interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initCommandE,
	}

	cmd.Flags().StringVarP(&initOutputPath, "output", "o", "experiment.yaml", "Path for the generated spec file")
	cmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string) error {
	initialName := ""
	if len(args) == 1 {
		initialName = args[0]
	}

	if !initForce {
		if _, err := os.Stat(initOutputPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", initOutputPath)
		}
	}

	draft, err := wizard.RunExperimentWizard(cmd.InOrStdin(), cmd.OutOrStdout(), initialName)
	if err != nil {
		return err
	}

	content, err := wizard.GenerateExperimentYAML(draft)
	if err != nil {
		return err
	}

	if err := os.WriteFile(initOutputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", initOutputPath, err)
	}

	fmt.Printf("Created %s\n", initOutputPath)
	fmt.Printf("Run it with: truthbench run %s\n", initOutputPath)
	return nil
}
