package driven

import (
	"context"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

// OutcomeStore records per-artifact processing outcomes so operators can
// query past runs.
type OutcomeStore interface {
	// Record stores one outcome.
	Record(ctx context.Context, outcome domain.Outcome) error

	// ListByRun returns the outcomes of a single run in processing order.
	ListByRun(ctx context.Context, runID string) ([]domain.Outcome, error)

	// ListRecent returns the most recent outcomes across runs.
	ListRecent(ctx context.Context, limit int) ([]domain.Outcome, error)
}
