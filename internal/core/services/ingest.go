package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
	"github.com/openlegis/lexfeed/internal/core/ports/driving"
	"github.com/openlegis/lexfeed/internal/logger"
)

// Ensure Ingest implements the interface.
var _ driving.IngestOrchestrator = (*Ingest)(nil)

const (
	defaultWorkers         = 4
	defaultArtifactTimeout = 30 * time.Second
	defaultPersistRetries  = 3
)

// IngestConfig tunes one orchestrator instance. Zero values fall back to
// defaults.
type IngestConfig struct {
	// Workers bounds concurrent artifact processing.
	Workers int

	// ArtifactTimeout is the per-artifact deadline covering read through
	// archive.
	ArtifactTimeout time.Duration

	// PersistRetries is how many times a failed upsert is retried before
	// the artifact is quarantined. Only persistence is retried; extraction,
	// validation, and mapping failures are deterministic.
	PersistRetries int

	// DryRun processes artifacts without persisting or moving them.
	// Outcomes are still recorded.
	DryRun bool
}

// Ingest coordinates one ingestion run over the staging area.
type Ingest struct {
	staging  driven.StagingStore
	registry driven.KindRegistry
	docs     driven.DocumentStore
	outcomes driven.OutcomeStore
	config   IngestConfig

	mu     sync.RWMutex
	active *driving.RunStatus
}

// NewIngest creates a new ingest orchestrator.
func NewIngest(
	staging driven.StagingStore,
	registry driven.KindRegistry,
	docs driven.DocumentStore,
	outcomes driven.OutcomeStore,
	config IngestConfig,
) *Ingest {
	if config.Workers <= 0 {
		config.Workers = defaultWorkers
	}
	if config.ArtifactTimeout <= 0 {
		config.ArtifactTimeout = defaultArtifactTimeout
	}
	if config.PersistRetries <= 0 {
		config.PersistRetries = defaultPersistRetries
	}
	return &Ingest{
		staging:  staging,
		registry: registry,
		docs:     docs,
		outcomes: outcomes,
		config:   config,
	}
}

// Run processes every pending artifact across all staged kinds. Per-artifact
// failures quarantine the artifact and record an outcome; only run-level
// failures (staging unreachable, listing errors) surface as the returned
// error.
func (o *Ingest) Run(ctx context.Context) (*driving.RunSummary, error) {
	status, err := o.begin()
	if err != nil {
		return nil, err
	}
	defer o.end()

	kinds, err := o.staging.Kinds()
	if err != nil {
		return nil, fmt.Errorf("list staging kinds: %w", err)
	}

	logger.Info("Starting ingestion run %s across %d kind(s)", status.RunID, len(kinds))

	var listErrs []error
	for _, kind := range kinds {
		if err := o.runKind(ctx, status.RunID, kind); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			listErrs = append(listErrs, fmt.Errorf("kind %s: %w", kind, err))
		}
	}

	summary := o.summarise(status)
	logger.Info("Ingestion run %s complete: %d archived, %d quarantined",
		summary.RunID, summary.Archived, summary.Quarantined)

	if len(listErrs) > 0 {
		return summary, errors.Join(listErrs...)
	}
	return summary, nil
}

// runKind drains one kind directory through the worker pool.
func (o *Ingest) runKind(ctx context.Context, runID, kind string) error {
	artifactsCh, errsCh := o.staging.ListPending(ctx, kind)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.config.Workers)

	var listErr error
	for {
		select {
		case <-gctx.Done():
			_ = g.Wait()
			return gctx.Err()

		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			// Listing errors abort the kind, not in-flight workers.
			listErr = err

		case artifact, ok := <-artifactsCh:
			if !ok {
				if err := g.Wait(); err != nil {
					return err
				}
				// The producer may have parked a final error before
				// closing both channels.
				if errsCh != nil {
					if err, open := <-errsCh; open && err != nil {
						listErr = err
					}
				}
				return listErr
			}
			g.Go(func() error {
				o.processArtifact(gctx, runID, artifact)
				return nil
			})
		}
	}
}

// processArtifact runs the stage machine for one file. Every path ends in
// exactly one outcome record, and (outside dry runs) exactly one rename out
// of staging.
func (o *Ingest) processArtifact(ctx context.Context, runID string, artifact domain.StagedArtifact) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, o.config.ArtifactTimeout)
	defer cancel()

	logger.Debug("Processing: %s/%s", artifact.Kind, artifact.Name)

	identity, err := o.registry.Extract(artifact.Name, artifact.ModTime)
	if err != nil {
		o.quarantine(ctx, runID, artifact, domain.StageIdentified, err, start)
		return
	}

	deserialiser, mapper, err := o.registry.Resolve(artifact.Kind)
	if err != nil {
		o.quarantine(ctx, runID, artifact, domain.StageIdentified, err, start)
		return
	}

	raw, err := o.staging.Read(artifact)
	if err != nil {
		o.quarantine(ctx, runID, artifact, domain.StageDeserialised, err, start)
		return
	}

	ir, err := deserialiser.Deserialise(ctx, raw)
	if err != nil {
		o.quarantine(ctx, runID, artifact, domain.StageDeserialised, err, start)
		return
	}

	doc, err := mapper.Map(ctx, ir, identity)
	if err != nil {
		o.quarantine(ctx, runID, artifact, domain.StageMapped, err, start)
		return
	}

	result, err := o.persist(ctx, doc)
	if err != nil {
		o.quarantine(ctx, runID, artifact, domain.StagePersisted, err, start)
		return
	}

	if !o.config.DryRun {
		if err := o.staging.Archive(artifact, identity); err != nil {
			o.quarantine(ctx, runID, artifact, domain.StageArchived, err, start)
			return
		}
	}

	o.record(ctx, domain.Outcome{
		RunID:       runID,
		Artifact:    artifact.Name,
		Kind:        artifact.Kind,
		Stage:       domain.StageArchived,
		Result:      result.String(),
		Duration:    time.Since(start),
		ProcessedAt: time.Now().UTC(),
	})
	o.bump(func(s *driving.RunStatus) {
		s.Processed++
		s.Archived++
	})
}

// persist upserts with bounded exponential backoff. Storage failures are the
// one transient stage; everything upstream is deterministic and retrying it
// would reproduce the same failure.
func (o *Ingest) persist(ctx context.Context, doc *domain.Document) (domain.PersistResult, error) {
	if o.config.DryRun {
		return o.lookupDryRunResult(ctx, doc)
	}

	var result domain.PersistResult
	operation := func() error {
		var err error
		result, err = o.docs.Upsert(ctx, doc)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(o.config.PersistRetries)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return result, err
	}
	return result, nil
}

// lookupDryRunResult reports what a real upsert would have done without
// writing anything.
func (o *Ingest) lookupDryRunResult(ctx context.Context, doc *domain.Document) (domain.PersistResult, error) {
	_, err := o.docs.Get(ctx, doc.DocType, doc.Number, doc.SessionYear)
	switch {
	case err == nil:
		return domain.PersistUpdated, nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.PersistInserted, nil
	default:
		return domain.PersistInserted, err
	}
}

// quarantine relocates a failed artifact and records its outcome.
func (o *Ingest) quarantine(
	ctx context.Context,
	runID string,
	artifact domain.StagedArtifact,
	stage domain.Stage,
	cause error,
	start time.Time,
) {
	logger.Warn("Quarantining %s/%s at %s: %v", artifact.Kind, artifact.Name, stage, cause)

	if !o.config.DryRun {
		if err := o.staging.Quarantine(artifact, stage, cause); err != nil {
			logger.Warn("Failed to quarantine %s: %v", artifact.Name, err)
		}
	}

	o.record(ctx, domain.Outcome{
		RunID:       runID,
		Artifact:    artifact.Name,
		Kind:        artifact.Kind,
		Stage:       stage,
		Failed:      true,
		Error:       cause.Error(),
		Duration:    time.Since(start),
		ProcessedAt: time.Now().UTC(),
	})
	o.bump(func(s *driving.RunStatus) {
		s.Processed++
		s.Quarantined++
	})
}

// record stores one outcome; a failing outcome log never fails the artifact.
func (o *Ingest) record(ctx context.Context, outcome domain.Outcome) {
	if err := o.outcomes.Record(ctx, outcome); err != nil {
		logger.Warn("Failed to record outcome for %s: %v", outcome.Artifact, err)
	}
}

// Status returns the state of the active run, or an idle status.
func (o *Ingest) Status(_ context.Context) (*driving.RunStatus, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.active != nil {
		// Return a copy to avoid race conditions.
		copied := *o.active
		return &copied, nil
	}
	return &driving.RunStatus{Running: false}, nil
}

// begin claims the single-run slot.
func (o *Ingest) begin() (*driving.RunStatus, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.active != nil {
		return nil, domain.ErrIngestInProgress
	}
	o.active = &driving.RunStatus{
		RunID:   uuid.NewString(),
		Running: true,
	}
	return o.active, nil
}

// end releases the run slot.
func (o *Ingest) end() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.active = nil
}

// bump mutates the active status under the lock.
func (o *Ingest) bump(fn func(*driving.RunStatus)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.active != nil {
		fn(o.active)
	}
}

// summarise snapshots the final counters for the run.
func (o *Ingest) summarise(status *driving.RunStatus) *driving.RunSummary {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return &driving.RunSummary{
		RunID:       status.RunID,
		Archived:    status.Archived,
		Quarantined: status.Quarantined,
	}
}
