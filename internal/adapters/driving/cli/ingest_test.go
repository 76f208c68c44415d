package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlegis/lexfeed/internal/core/ports/driving"
)

// fakeOrchestrator implements driving.IngestOrchestrator for CLI tests.
type fakeOrchestrator struct {
	summary driving.RunSummary
	err     error
	called  bool
}

func (f *fakeOrchestrator) Run(_ context.Context) (*driving.RunSummary, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	summary := f.summary
	return &summary, nil
}

func (f *fakeOrchestrator) Status(_ context.Context) (*driving.RunStatus, error) {
	return &driving.RunStatus{}, nil
}

func TestIngestCmd_NotConfigured(t *testing.T) {
	original := ingestOrchestrator
	ingestOrchestrator = nil
	defer func() { ingestOrchestrator = original }()

	_, err := execute(t, "ingest")
	assert.Error(t, err)
}

func TestIngestCmd_ReportsSummary(t *testing.T) {
	original := ingestOrchestrator
	fake := &fakeOrchestrator{summary: driving.RunSummary{RunID: "run-x", Archived: 3, Quarantined: 1}}
	ingestOrchestrator = fake
	defer func() { ingestOrchestrator = original }()

	out, err := execute(t, "ingest")
	require.NoError(t, err)
	assert.True(t, fake.called)
	assert.Contains(t, out, "3 archived, 1 quarantined")
	assert.Contains(t, out, "lexfeed outcomes --run run-x")
}

func TestIngestCmd_RunFailure(t *testing.T) {
	original := ingestOrchestrator
	ingestOrchestrator = &fakeOrchestrator{err: errors.New("staging unreachable")}
	defer func() { ingestOrchestrator = original }()

	_, err := execute(t, "ingest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging unreachable")
}

func TestIngestCmd_DryRunUsesDryRunOrchestrator(t *testing.T) {
	originalLive := ingestOrchestrator
	originalDry := dryRunOrchestrator
	live := &fakeOrchestrator{}
	dry := &fakeOrchestrator{summary: driving.RunSummary{RunID: "run-d"}}
	ingestOrchestrator = live
	dryRunOrchestrator = dry
	defer func() {
		ingestOrchestrator = originalLive
		dryRunOrchestrator = originalDry
		ingestDryRun = false
	}()

	out, err := execute(t, "ingest", "--dry-run")
	require.NoError(t, err)
	assert.False(t, live.called)
	assert.True(t, dry.called)
	assert.Contains(t, out, "dry run")
}
