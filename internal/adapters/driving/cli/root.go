// Package cli implements the lexfeed command-line interface. Commands are
// thin: they validate arguments, call into the driving ports, and format
// output. Dependencies are injected once at startup via Init.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/openlegis/lexfeed/internal/core/ports/driven"
	"github.com/openlegis/lexfeed/internal/core/ports/driving"
	"github.com/openlegis/lexfeed/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired in by Init. Commands nil-check before use so partial
// wiring (e.g., in tests) fails with a clear message instead of a panic.
var (
	ingestOrchestrator driving.IngestOrchestrator
	dryRunOrchestrator driving.IngestOrchestrator
	documentStore      driven.DocumentStore
	outcomeStore       driven.OutcomeStore
	stagingWatcher     Watcher
)

// Watcher emits staging file paths as they arrive. Implemented by the
// filesystem staging store.
type Watcher interface {
	Watch(ctx context.Context) (<-chan string, error)
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lexfeed",
	Short: "Legislative document ingestion pipeline",
	Long: `lexfeed ingests legislative document packages dropped into a staging
directory, normalises them into a canonical relational form, and archives
the processed files. Failed artifacts are quarantined with diagnostics.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Dependencies bundles everything the CLI needs.
type Dependencies struct {
	Ingest    driving.IngestOrchestrator
	DryRun    driving.IngestOrchestrator
	Documents driven.DocumentStore
	Outcomes  driven.OutcomeStore
	Watcher   Watcher
}

// Init wires services into the command tree. Call before Execute.
func Init(deps Dependencies) {
	ingestOrchestrator = deps.Ingest
	dryRunOrchestrator = deps.DryRun
	documentStore = deps.Documents
	outcomeStore = deps.Outcomes
	stagingWatcher = deps.Watcher
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
