package domain

import "time"

// Stage is a state in the per-artifact processing machine.
type Stage string

const (
	StageDiscovered   Stage = "DISCOVERED"
	StageIdentified   Stage = "IDENTIFIED"
	StageDeserialised Stage = "DESERIALISED"
	StageMapped       Stage = "MAPPED"
	StagePersisted    Stage = "PERSISTED"
	StageArchived     Stage = "ARCHIVED"
)

// Outcome is one record per processed artifact, emitted for monitoring.
// Every input file ends in exactly one outcome: archived or quarantined.
type Outcome struct {
	// RunID groups outcomes belonging to one ingestion run.
	RunID string

	// Artifact is the bare filename.
	Artifact string

	// Kind is the staging kind the artifact was listed under.
	Kind string

	// Stage is the final state reached. StageArchived for success;
	// for failures, the stage that was being entered when processing
	// short-circuited.
	Stage Stage

	// Failed indicates the artifact was quarantined.
	Failed bool

	// Error is the failure message, empty on success.
	Error string

	// Result distinguishes inserted from updated for successful outcomes.
	Result string

	// Duration is wall-clock processing time for the artifact.
	Duration time.Duration

	// ProcessedAt is when processing finished.
	ProcessedAt time.Time
}
