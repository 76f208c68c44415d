// Package domain contains the core entities of the ingestion pipeline:
// staged artifacts and their extracted identities, the canonical document
// aggregate, the closed chamber and action-type vocabularies, and the
// per-stage error taxonomy.
//
// The domain layer has no dependencies on adapters or external services.
package domain
