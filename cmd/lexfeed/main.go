// Command lexfeed is the legislative document ingestion pipeline.
package main

import (
	"fmt"
	"os"

	configfile "github.com/openlegis/lexfeed/internal/adapters/driven/config/file"
	"github.com/openlegis/lexfeed/internal/adapters/driven/staging/fs"
	"github.com/openlegis/lexfeed/internal/adapters/driven/storage/memory"
	"github.com/openlegis/lexfeed/internal/adapters/driven/storage/sqlite"
	"github.com/openlegis/lexfeed/internal/adapters/driving/cli"
	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/services"
	"github.com/openlegis/lexfeed/internal/kinds"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore(os.Getenv("LEXFEED_HOME"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := configStore.Config()

	staging, err := fs.NewStore(cfg.Staging.Root, cfg.Staging.ArchiveRoot, cfg.Staging.QuarantineRoot)
	if err != nil {
		return fmt.Errorf("open staging: %w", err)
	}

	store, err := sqlite.NewStore(cfg.Staging.DataDir)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	registry := kinds.Defaults()

	ingestCfg := services.IngestConfig{
		Workers:         cfg.Ingest.Workers,
		ArtifactTimeout: cfg.Ingest.ArtifactTimeout(),
		PersistRetries:  cfg.Ingest.PersistRetryAttempts,
	}
	ingest := services.NewIngest(staging, registry, store.DocumentStore(), store.OutcomeStore(), ingestCfg)

	// Dry runs read the real document store to report insert-vs-update
	// accurately, but record outcomes only in memory.
	dryCfg := ingestCfg
	dryCfg.DryRun = true
	dryRun := services.NewIngest(staging, registry, store.DocumentStore(), memory.NewOutcomeStore(), dryCfg)

	scheduler := services.NewScheduler(
		domain.SchedulerConfig{
			Enabled:  cfg.Scheduler.Enabled,
			Interval: cfg.Scheduler.Interval(),
		},
		store.SchedulerStore(),
		ingest,
	)

	cli.Init(cli.Dependencies{
		Ingest:    ingest,
		DryRun:    dryRun,
		Documents: store.DocumentStore(),
		Outcomes:  store.OutcomeStore(),
		Watcher:   staging,
	})
	cli.InitScheduler(scheduler)

	return cli.Execute()
}
