package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the staging area and ingest arrivals continuously",
	Long: `Runs an initial ingestion pass, then watches the staging directory and
triggers a run whenever new artifacts arrive. Bursts of arrivals are
coalesced into a single run. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if ingestOrchestrator == nil {
		return errors.New("ingest service not configured")
	}
	if stagingWatcher == nil {
		return errors.New("staging watcher not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	events, err := stagingWatcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch staging: %w", err)
	}

	// At most one run every two seconds, so a burst of dropped files is
	// drained by a single pass over the staging directory.
	limiter := rate.NewLimiter(rate.Every(2*time.Second), 1)

	cmd.Println("Watching staging area. Press Ctrl-C to stop.")

	// Drain whatever is already pending before waiting on events.
	runOnce(ctx, cmd)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("\nStopping watch.")
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			runOnce(ctx, cmd)
		}
	}
}

// runOnce triggers one ingestion run; failures are reported but never stop
// the watch loop.
func runOnce(ctx context.Context, cmd *cobra.Command) {
	summary, err := ingestOrchestrator.Run(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrIngestInProgress) || errors.Is(err, context.Canceled) {
			return
		}
		logger.Warn("Ingestion run failed: %v", err)
		if summary == nil {
			return
		}
	}
	if summary.Archived > 0 || summary.Quarantined > 0 {
		cmd.Printf("Run %s: %d archived, %d quarantined\n",
			summary.RunID, summary.Archived, summary.Quarantined)
	}
}
