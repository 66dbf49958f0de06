package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/truthscore/truthbench/internal/generation"
)

var checkLive bool

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check backend configuration",
		Long: `Check whether the openai backend is usable.

Verifies that OPENAI_API_KEY is set and, with --live, performs one round
trip against the API.`,
		Args: cobra.NoArgs,
		RunE: checkCommandE,
	}

	cmd.Flags().BoolVar(&checkLive, "live", false, "Perform a live API round trip")

	return cmd
}

func checkCommandE(cmd *cobra.Command, args []string) error {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		fmt.Println("OPENAI_API_KEY is not set.")
		fmt.Println("Runs will use the stub backend with placeholder responses.")
		fmt.Println()
		fmt.Println("To enable live generation:")
		fmt.Println("  export OPENAI_API_KEY=your-api-key-here")
		return nil
	}

	fmt.Printf("OPENAI_API_KEY is set (%s)\n", maskKey(key))

	if !checkLive {
		return nil
	}

	g, err := generation.NewOpenAIGenerator("")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("Testing API connection...")
	resp, err := g.Generate(ctx, generation.Request{
		System:      "You are a helpful assistant.",
		Prompt:      "Say 'API is working' if you receive this.",
		Temperature: 0,
		MaxTokens:   20,
	})
	if err != nil {
		return fmt.Errorf("API test failed: %w", err)
	}

	fmt.Printf("API response: %s\n", resp.Text)
	fmt.Println("API connection successful.")
	return nil
}

// maskKey keeps only enough of the key to recognize it.
func maskKey(key string) string {
	if len(key) <= 12 {
		return "***"
	}
	return key[:7] + "..." + key[len(key)-4:]
}
