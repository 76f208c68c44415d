package memory

import (
	"context"
	"sync"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
)

// Ensure OutcomeStore implements the interface.
var _ driven.OutcomeStore = (*OutcomeStore)(nil)

// OutcomeStore is an in-memory implementation of driven.OutcomeStore.
type OutcomeStore struct {
	mu       sync.RWMutex
	outcomes []domain.Outcome
}

// NewOutcomeStore creates a new in-memory outcome store.
func NewOutcomeStore() *OutcomeStore {
	return &OutcomeStore{}
}

// Record appends one outcome.
func (s *OutcomeStore) Record(_ context.Context, outcome domain.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, outcome)
	return nil
}

// ListByRun returns the outcomes of a single run in recording order.
func (s *OutcomeStore) ListByRun(_ context.Context, runID string) ([]domain.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Outcome
	for _, o := range s.outcomes {
		if o.RunID == runID {
			result = append(result, o)
		}
	}
	return result, nil
}

// ListRecent returns the most recently recorded outcomes, newest first.
func (s *OutcomeStore) ListRecent(_ context.Context, limit int) ([]domain.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Outcome
	for i := len(s.outcomes) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.outcomes[i])
	}
	return result, nil
}
