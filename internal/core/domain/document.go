package domain

import "time"

// Document is the canonical aggregate persisted to storage.
// Identity is the composite (DocType, Number, SessionYear); re-ingesting the
// same artifact upserts rather than duplicates. Documents are mutated only by
// the persistence gateway during ingestion.
type Document struct {
	// DocType is the document type code (e.g., "HR", "S", "PUB").
	DocType string

	// Number is the document number within its type and session.
	Number int

	// SessionYear is derived from the origin congress number via
	// SessionYear(); it is never hand-set, so ingestion is reproducible.
	SessionYear int

	// Title is the official title.
	Title string

	// Sponsors lists sponsor references. May be empty; sparse source
	// data is expected.
	Sponsors []Sponsor

	// Actions is ordered by occurrence date, ties broken by source order.
	Actions []Action

	// Text is the concatenated full text body.
	Text string

	// Provenance records where the document came from.
	Provenance Provenance

	// CreatedAt is when the document was first persisted.
	CreatedAt time.Time

	// UpdatedAt is when the document was last persisted.
	UpdatedAt time.Time
}

// Sponsor is a legislator reference attached to a document.
// LegislatorID is a placeholder until sponsor resolution links it to a
// legislator record downstream.
type Sponsor struct {
	Name  string
	Party string
	State string

	// LegislatorID links to a resolved legislator, when known.
	LegislatorID *string
}

// Action is a single chronological event in a document's history.
type Action struct {
	// Date is the occurrence date.
	Date time.Time

	// Chamber is the normalised chamber.
	Chamber Chamber

	// Type is the derived classification of Text.
	Type ActionType

	// Text is the raw action text from the source.
	Text string

	// Position is the ordinal position in the source, used as the
	// tie-breaker for equal dates.
	Position int
}

// Provenance records the federal origin of a canonical document.
type Provenance struct {
	// Congress is the origin congress number.
	Congress int

	// Source is the origin collection name (e.g., "BILLS").
	Source string

	// Published is the origin artifact's published timestamp.
	Published time.Time
}

// PersistResult distinguishes an insert from an update for observability.
type PersistResult int

const (
	// PersistInserted indicates a new document row was created.
	PersistInserted PersistResult = iota

	// PersistUpdated indicates an existing document was refreshed.
	PersistUpdated
)

// String returns the result name.
func (r PersistResult) String() string {
	if r == PersistInserted {
		return "inserted"
	}
	return "updated"
}
