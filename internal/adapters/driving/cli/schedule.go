package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// SchedulerRunner is implemented by the core scheduler service.
type SchedulerRunner interface {
	Start(ctx context.Context) error
	Stop() error
}

var scheduler SchedulerRunner

// InitScheduler wires the scheduler service. Optional; the schedule
// command errors when unset.
func InitScheduler(s SchedulerRunner) {
	scheduler = s
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the background ingestion scheduler",
	Long: `Starts the scheduler, which triggers ingestion runs at the configured
interval. Blocks until interrupted.`,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Println("Scheduler running. Press Ctrl-C to stop.")

	err := scheduler.Start(ctx)
	if stopErr := scheduler.Stop(); stopErr != nil {
		return stopErr
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	cmd.Println("Scheduler stopped.")
	return nil
}
