package domain

import "time"

// StagedArtifact is a source file discovered in the staging area.
// It is read-only during processing; the staging store owns its lifecycle
// and relocates it to the archive or quarantine when processing ends.
type StagedArtifact struct {
	// Path is the absolute path of the file in staging.
	Path string

	// Name is the bare filename.
	Name string

	// Kind is the staging subdirectory the artifact was found under.
	Kind string

	// ModTime is the file's last-modified timestamp.
	ModTime time.Time

	// Size is the raw byte size.
	Size int64
}

// ArtifactIdentity is the immutable identity extracted from an artifact's
// filename. Extraction either fully succeeds or fails; identities are never
// partially populated.
type ArtifactIdentity struct {
	// Kind is the registered kind code (e.g., "bill", "law").
	Kind string

	// Collection is the source collection name from the filename
	// (e.g., "BILLS", "PLAW"). Carried into provenance verbatim.
	Collection string

	// Congress is the origin congress/session number.
	Congress int

	// DocType is the document type code, uppercased (e.g., "HR", "S", "PUB").
	// Optional filename groups that did not match are empty strings.
	DocType string

	// Number is the document number within its type and congress.
	Number int

	// Published is the timestamp parsed from the filename, falling back
	// to the file's modification time when the name carries none.
	Published time.Time
}
