package driven

import (
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

// KindRegistry is the single extension point for document kinds. It maps a
// kind code to its filename pattern, deserialiser, and mapper; adding a new
// kind is one registration, the orchestrator never changes.
type KindRegistry interface {
	// Resolve returns the handler pair for a kind code.
	// Returns *domain.UnknownKindError for unregistered kinds.
	Resolve(kind string) (Deserialiser, Mapper, error)

	// Extract parses a filename into an artifact identity using the
	// registered patterns. modTime is the fallback published timestamp
	// when the name carries none. Returns *domain.ExtractionError when
	// no pattern matches.
	Extract(filename string, modTime time.Time) (domain.ArtifactIdentity, error)

	// Kinds returns all registered kind codes.
	Kinds() []string
}
