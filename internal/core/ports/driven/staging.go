package driven

import (
	"context"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

// StagingStore enumerates pending artifacts and relocates them when
// processing ends. The filesystem adapter backs this with atomic renames,
// which is what makes intake exactly-once: an archived artifact has
// physically left the staging directory and can never be re-listed.
type StagingStore interface {
	// Kinds returns the kind subdirectories present under staging.
	Kinds() ([]string, error)

	// ListPending produces a lazy, finite, restartable sequence over the
	// files staged for a kind. Returns channels for artifacts and errors;
	// both close when the listing is exhausted. Subdirectories are not
	// recursed into.
	ListPending(ctx context.Context, kind string) (<-chan domain.StagedArtifact, <-chan error)

	// Read returns the artifact's raw bytes.
	Read(artifact domain.StagedArtifact) ([]byte, error)

	// Archive moves a successfully processed artifact to
	// archive/<kind>/<year>/<type>/<filename>. The move is a rename.
	Archive(artifact domain.StagedArtifact, identity domain.ArtifactIdentity) error

	// Quarantine moves a failed artifact to quarantine/<kind>/<filename>
	// and writes a sidecar <filename>.error note carrying the failed
	// stage and message.
	Quarantine(artifact domain.StagedArtifact, stage domain.Stage, cause error) error
}
