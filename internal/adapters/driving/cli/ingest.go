package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openlegis/lexfeed/internal/core/ports/driving"
)

var ingestDryRun bool

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Process all pending artifacts in the staging area",
	Long: `Drains the staging directory: every pending artifact is identified,
deserialised, mapped, and persisted, then archived. Artifacts that fail any
stage are quarantined with an error sidecar. With --dry-run, artifacts are
processed and outcomes reported but nothing is persisted or moved.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestDryRun, "dry-run", false, "process without persisting or moving files")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	orchestrator := ingestOrchestrator
	if ingestDryRun {
		orchestrator = dryRunOrchestrator
	}
	if orchestrator == nil {
		return errors.New("ingest service not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if ingestDryRun {
		cmd.Println("Starting ingestion (dry run)...")
	} else {
		cmd.Println("Starting ingestion...")
	}

	summary, err := ingestWithProgress(ctx, cmd, orchestrator)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Run %s complete: %d archived, %d quarantined.\n",
		summary.RunID, summary.Archived, summary.Quarantined)
	if summary.Quarantined > 0 {
		cmd.Printf("Inspect quarantined artifacts with: lexfeed outcomes --run %s\n", summary.RunID)
	}
	return nil
}

// ingestWithProgress runs ingestion while displaying progress updates.
func ingestWithProgress(
	ctx context.Context,
	cmd *cobra.Command,
	orchestrator driving.IngestOrchestrator,
) (*driving.RunSummary, error) {
	type result struct {
		summary *driving.RunSummary
		err     error
	}
	resultCh := make(chan result, 1)
	go func() {
		summary, err := orchestrator.Run(ctx)
		resultCh <- result{summary, err}
	}()

	// Poll status every 500ms
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	lastCount := 0
	for {
		select {
		case r := <-resultCh:
			return r.summary, r.err
		case <-ticker.C:
			// Check progress (ignore status error - best effort)
			status, statusErr := orchestrator.Status(ctx)
			if statusErr == nil && status != nil && status.Processed > lastCount {
				cmd.Printf("\rProcessing... %d artifacts", status.Processed)
				lastCount = status.Processed
			}
		}
	}
}
