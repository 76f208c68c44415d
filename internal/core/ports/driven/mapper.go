package driven

import (
	"context"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

// Mapper converts a kind's IR into the canonical document aggregate.
// Pure transformation: derives session year from the identity's congress
// number, classifies actions, normalises chambers, concatenates text, and
// attaches provenance. No I/O.
type Mapper interface {
	// Kind returns the kind code this mapper handles.
	Kind() string

	// Map normalises an IR into a canonical document.
	// Returns *domain.MappingError for IR shapes it cannot normalise.
	Map(ctx context.Context, ir IR, identity domain.ArtifactIdentity) (*domain.Document, error)
}
