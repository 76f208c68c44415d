package driven

import "context"

// IR is the kind-specific intermediate representation produced by a
// schema-validated parse. Each kind owns its own IR shape; the marker
// method lets mappers reject an IR from the wrong kind.
type IR interface {
	// IRKind returns the kind code the IR belongs to.
	IRKind() string
}

// Deserialiser validates raw bytes against the kind's structural schema and
// produces the kind's IR. Malformed input fails here, never downstream:
// no partial IR escapes a failed parse.
type Deserialiser interface {
	// Kind returns the kind code this deserialiser handles.
	Kind() string

	// Deserialise validates and parses the artifact body.
	// Returns *domain.ValidationError on schema violation.
	Deserialise(ctx context.Context, data []byte) (IR, error)
}
