package bill

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
)

// Ensure Deserialiser implements the interface.
var _ driven.Deserialiser = (*Deserialiser)(nil)

// actionDateLayout is the date format used by action descriptors.
const actionDateLayout = "2006-01-02"

// Deserialiser parses and validates bill XML bodies.
type Deserialiser struct{}

// NewDeserialiser creates a bill deserialiser.
func NewDeserialiser() *Deserialiser {
	return &Deserialiser{}
}

// Kind returns the kind code this deserialiser handles.
func (d *Deserialiser) Kind() string { return Kind }

// Deserialise validates the byte stream and produces the bill IR.
// Validation is structural: well-formed XML with a <bill> root, a non-empty
// official title, and parseable action dates. An invalid body yields a
// ValidationError; no partial IR is returned.
func (d *Deserialiser) Deserialise(_ context.Context, data []byte) (driven.IR, error) {
	var ir IR
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&ir); err != nil {
		return nil, validationError(err)
	}

	if ir.OfficialTitle == "" {
		return nil, &domain.ValidationError{Kind: Kind, Reason: "missing officialTitle"}
	}
	for i, a := range ir.Actions {
		if a.Date == "" {
			return nil, &domain.ValidationError{
				Kind: Kind, Reason: fmt.Sprintf("action %d: missing date", i),
			}
		}
		if _, err := time.Parse(actionDateLayout, a.Date); err != nil {
			return nil, &domain.ValidationError{
				Kind: Kind, Reason: fmt.Sprintf("action %d: date %q is not YYYY-MM-DD", i, a.Date),
			}
		}
	}

	return &ir, nil
}

// validationError converts a decoder error, carrying the line when the
// decoder provides one.
func validationError(err error) *domain.ValidationError {
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		return &domain.ValidationError{Kind: Kind, Line: syntax.Line, Reason: syntax.Msg}
	}
	return &domain.ValidationError{Kind: Kind, Reason: err.Error()}
}
