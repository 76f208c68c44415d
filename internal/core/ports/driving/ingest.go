package driving

import "context"

// IngestOrchestrator runs the ingestion pipeline over the staging area.
type IngestOrchestrator interface {
	// Run processes every pending artifact across all staged kinds and
	// returns a summary. Per-artifact failures are quarantined and
	// recorded, never returned; the error is non-nil only for run-level
	// failures (e.g., staging unreachable).
	Run(ctx context.Context) (*RunSummary, error)

	// Status returns the state of the active run, or an idle status.
	Status(ctx context.Context) (*RunStatus, error)
}

// RunSummary reports one completed ingestion run.
type RunSummary struct {
	// RunID identifies the run in the outcome log.
	RunID string

	// Archived counts artifacts that completed the full pipeline.
	Archived int

	// Quarantined counts artifacts that failed at any stage.
	Quarantined int
}

// RunStatus reports an in-flight run for progress display.
type RunStatus struct {
	RunID       string
	Running     bool
	Processed   int
	Archived    int
	Quarantined int
}
