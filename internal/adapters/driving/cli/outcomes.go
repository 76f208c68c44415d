package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

var (
	outcomesRunID string
	outcomesLimit int
)

var outcomesCmd = &cobra.Command{
	Use:   "outcomes",
	Short: "Show per-artifact processing outcomes",
	Long: `Lists the outcome records of past ingestion runs: which artifacts were
archived, which were quarantined, and at what stage they failed.`,
	RunE: runOutcomes,
}

func init() {
	outcomesCmd.Flags().StringVar(&outcomesRunID, "run", "", "show outcomes for a specific run")
	outcomesCmd.Flags().IntVar(&outcomesLimit, "limit", 50, "maximum outcomes to show")
	rootCmd.AddCommand(outcomesCmd)
}

func runOutcomes(cmd *cobra.Command, _ []string) error {
	if outcomeStore == nil {
		return errors.New("outcome store not configured")
	}

	ctx := context.Background()

	var (
		outcomes []domain.Outcome
		err      error
	)
	if outcomesRunID != "" {
		outcomes, err = outcomeStore.ListByRun(ctx, outcomesRunID)
	} else {
		outcomes, err = outcomeStore.ListRecent(ctx, outcomesLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to list outcomes: %w", err)
	}

	if len(outcomes) == 0 {
		cmd.Println("No outcomes recorded.")
		return nil
	}

	for i := range outcomes {
		o := &outcomes[i]
		if o.Failed {
			cmd.Printf("  FAILED   %s/%s\n", o.Kind, o.Artifact)
			cmd.Printf("    Stage: %s\n", o.Stage)
			cmd.Printf("    Error: %s\n", o.Error)
		} else {
			cmd.Printf("  ARCHIVED %s/%s\n", o.Kind, o.Artifact)
			cmd.Printf("    Result: %s\n", o.Result)
		}
		cmd.Printf("    Run: %s\n", o.RunID)
		cmd.Printf("    Processed: %s (%s)\n",
			o.ProcessedAt.Format("2006-01-02 15:04:05"), o.Duration.Round(time.Millisecond))
		cmd.Println()
	}

	cmd.Printf("Total: %d outcomes\n", len(outcomes))
	return nil
}
