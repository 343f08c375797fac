package application

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Output names the action publishes after a run.
const (
	outputStaled = "staled-issues-prs"
	outputClosed = "closed-issues-prs"
)

// WriteRunOutputs serializes the run result to the GITHUB_OUTPUT file in the
// runner's name=value format. An empty path (running outside Actions) only
// logs the counts.
func WriteRunOutputs(path string, result *Result) error {
	if path == "" {
		slog.Info("no output file configured, skipping outputs",
			"staled", len(result.StaleItems),
			"closed", len(result.ClosedItems),
		)
		return nil
	}

	staled, err := json.Marshal(result.StaleItems)
	if err != nil {
		return fmt.Errorf("marshal staled items: %w", err)
	}
	closed, err := json.Marshal(result.ClosedItems)
	if err != nil {
		return fmt.Errorf("marshal closed items: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s=%s\n%s=%s\n", outputStaled, staled, outputClosed, closed); err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	return nil
}
