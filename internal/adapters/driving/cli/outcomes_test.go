package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlegis/lexfeed/internal/adapters/driven/storage/memory"
	"github.com/openlegis/lexfeed/internal/core/domain"
)

func seedOutcomeStore(t *testing.T) *memory.OutcomeStore {
	t.Helper()

	store := memory.NewOutcomeStore()
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, domain.Outcome{
		RunID:       "run-1",
		Artifact:    "BILLS-119thCongress-HR1.xml",
		Kind:        "bill",
		Stage:       domain.StageArchived,
		Result:      "inserted",
		Duration:    120 * time.Millisecond,
		ProcessedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.Record(ctx, domain.Outcome{
		RunID:       "run-2",
		Artifact:    "garbage.xml",
		Kind:        "bill",
		Stage:       domain.StageIdentified,
		Failed:      true,
		Error:       "filename matches no registered pattern",
		ProcessedAt: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC),
	}))
	return store
}

func TestOutcomes_NotConfigured(t *testing.T) {
	original := outcomeStore
	outcomeStore = nil
	defer func() { outcomeStore = original }()

	_, err := execute(t, "outcomes")
	assert.Error(t, err)
}

func TestOutcomes_Empty(t *testing.T) {
	original := outcomeStore
	outcomeStore = memory.NewOutcomeStore()
	defer func() { outcomeStore = original }()

	out, err := execute(t, "outcomes")
	require.NoError(t, err)
	assert.Contains(t, out, "No outcomes recorded.")
}

func TestOutcomes_Recent(t *testing.T) {
	original := outcomeStore
	outcomeStore = seedOutcomeStore(t)
	defer func() { outcomeStore = original }()

	out, err := execute(t, "outcomes")
	require.NoError(t, err)
	assert.Contains(t, out, "ARCHIVED bill/BILLS-119thCongress-HR1.xml")
	assert.Contains(t, out, "FAILED   bill/garbage.xml")
	assert.Contains(t, out, "Stage: IDENTIFIED")
	assert.Contains(t, out, "Total: 2 outcomes")
}

func TestOutcomes_FilterByRun(t *testing.T) {
	original := outcomeStore
	outcomeStore = seedOutcomeStore(t)
	defer func() { outcomeStore = original }()

	out, err := execute(t, "outcomes", "--run", "run-2")
	require.NoError(t, err)
	assert.Contains(t, out, "garbage.xml")
	assert.NotContains(t, out, "BILLS-119thCongress-HR1.xml")

	// Reset the sticky flag for other tests.
	outcomesRunID = ""
}
