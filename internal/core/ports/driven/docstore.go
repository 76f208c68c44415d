package driven

import (
	"context"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

// DocumentStore persists canonical documents.
// Backed by SQLite for the relational store.
type DocumentStore interface {
	// Upsert atomically inserts or updates a document keyed by its
	// composite identity. Child collections (sponsors, actions) are
	// replaced wholesale; re-ingestion is the refresh mechanism, not
	// incremental patching. Returns *domain.PersistenceError on failure.
	Upsert(ctx context.Context, doc *domain.Document) (domain.PersistResult, error)

	// Get retrieves a document with its children by composite identity.
	Get(ctx context.Context, docType string, number, sessionYear int) (*domain.Document, error)

	// List returns documents without child collections, optionally
	// filtered by session year (0 means all years).
	List(ctx context.Context, sessionYear int) ([]domain.Document, error)
}
