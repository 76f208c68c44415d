package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the per-stage taxonomy. Typed errors below wrap these
// so callers can match with errors.Is without losing detail.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtraction indicates a filename from which no identity could be
	// established. Fatal for the artifact.
	ErrExtraction = errors.New("identity extraction failed")

	// ErrValidation indicates a document body that failed its schema check.
	// Fatal for the artifact.
	ErrValidation = errors.New("schema validation failed")

	// ErrUnknownKind indicates a kind code with no registered handler pair.
	// Fatal for the artifact, never for the run.
	ErrUnknownKind = errors.New("unknown kind")

	// ErrMapping indicates an IR shape the domain mapper cannot normalise.
	// Fatal for the artifact.
	ErrMapping = errors.New("domain mapping failed")

	// ErrPersistence indicates a storage failure. Transient; retried by the
	// orchestrator before becoming fatal for the artifact.
	ErrPersistence = errors.New("persistence failed")

	// ErrIngestInProgress indicates an ingestion run is already active.
	ErrIngestInProgress = errors.New("ingestion in progress")
)

// ExtractionError carries the filename that matched no registered pattern.
type ExtractionError struct {
	Filename string
	Reason   string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %q: %s", e.Filename, e.Reason)
}

func (e *ExtractionError) Unwrap() error { return ErrExtraction }

// ValidationError carries the offending kind and, when the parser provides
// one, the line of the violation.
type ValidationError struct {
	Kind   string
	Line   int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("validate %s (line %d): %s", e.Kind, e.Line, e.Reason)
	}
	return fmt.Sprintf("validate %s: %s", e.Kind, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// UnknownKindError carries the unresolvable kind code.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("no handler registered for kind %q", e.Kind)
}

func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }

// MappingError carries the kind and reason an IR could not be normalised.
type MappingError struct {
	Kind   string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("map %s: %s", e.Kind, e.Reason)
}

func (e *MappingError) Unwrap() error { return ErrMapping }

// PersistenceError wraps a storage failure with the attempted operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return ErrPersistence }
