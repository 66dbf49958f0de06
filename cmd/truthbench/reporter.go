package main

import (
	"fmt"
	"time"

	"github.com/truthscore/truthbench/internal/orchestration"
)

func verboseProgressListener(event orchestration.ProgressEvent) {
	switch event.EventType {
	case orchestration.EventExperimentStart:
		fmt.Printf("Starting experiment with %d prompt(s)...\n\n", event.TotalPrompts)
	case orchestration.EventPromptStart:
		fmt.Printf("[%d/%d] Processing prompt: %s\n", event.PromptNum, event.TotalPrompts, truncate(event.Prompt, 50))
	case orchestration.EventMethodComplete:
		status := "ok"
		if event.IsError {
			status = "error"
		}
		fmt.Printf("  %s: %s\n", event.Method, status)
	case orchestration.EventPromptComplete:
		duration := time.Duration(event.DurationMs) * time.Millisecond
		fmt.Printf("  done (%v)\n\n", duration)
	case orchestration.EventAnnotateComplete:
		fmt.Printf("Annotated %d result(s)\n", event.TotalPrompts)
	case orchestration.EventExperimentComplete:
		duration := time.Duration(event.DurationMs) * time.Millisecond
		fmt.Printf("Experiment completed in %v\n", duration)
	}
}

func simpleProgressListener(event orchestration.ProgressEvent) {
	switch event.EventType {
	case orchestration.EventPromptComplete:
		fmt.Printf("[%d/%d] %s\n", event.PromptNum, event.TotalPrompts, truncate(event.Prompt, 50))
	}
}

// truncate shortens s to maxLen characters, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
