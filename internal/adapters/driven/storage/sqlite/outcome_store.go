package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
)

// outcomeStore implements driven.OutcomeStore.
type outcomeStore struct {
	store *Store
}

var _ driven.OutcomeStore = (*outcomeStore)(nil)

// Record stores one per-artifact outcome.
func (s *outcomeStore) Record(ctx context.Context, outcome domain.Outcome) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO outcomes (run_id, artifact, kind, stage, failed, error, result, duration_ms, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, outcome.RunID, outcome.Artifact, outcome.Kind, string(outcome.Stage),
		boolToInt(outcome.Failed), nullString(outcome.Error), nullString(outcome.Result),
		outcome.Duration.Milliseconds(), outcome.ProcessedAt.UTC())
	if err != nil {
		return fmt.Errorf("recording outcome: %w", err)
	}
	return nil
}

// ListByRun returns the outcomes of one run in processing order.
func (s *outcomeStore) ListByRun(ctx context.Context, runID string) ([]domain.Outcome, error) {
	return s.list(ctx, `
		SELECT run_id, artifact, kind, stage, failed, error, result, duration_ms, processed_at
		FROM outcomes WHERE run_id = ? ORDER BY id
	`, runID)
}

// ListRecent returns the most recent outcomes across runs.
func (s *outcomeStore) ListRecent(ctx context.Context, limit int) ([]domain.Outcome, error) {
	return s.list(ctx, `
		SELECT run_id, artifact, kind, stage, failed, error, result, duration_ms, processed_at
		FROM outcomes ORDER BY id DESC LIMIT ?
	`, limit)
}

// list runs an outcome query and scans the rows.
func (s *outcomeStore) list(ctx context.Context, query string, args ...interface{}) ([]domain.Outcome, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []domain.Outcome //nolint:prealloc // size unknown from query
	for rows.Next() {
		var o domain.Outcome
		var stage string
		var failed int
		var errMsg, result sql.NullString
		var durationMS int64
		var processedAt sql.NullTime
		if err := rows.Scan(&o.RunID, &o.Artifact, &o.Kind, &stage, &failed,
			&errMsg, &result, &durationMS, &processedAt); err != nil {
			return nil, fmt.Errorf("scanning outcome: %w", err)
		}
		o.Stage = domain.Stage(stage)
		o.Failed = failed == 1
		o.Error = errMsg.String
		o.Result = result.String
		o.Duration = time.Duration(durationMS) * time.Millisecond
		if processedAt.Valid {
			o.ProcessedAt = processedAt.Time
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outcomes: %w", err)
	}
	return outcomes, nil
}
