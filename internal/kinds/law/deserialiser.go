package law

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
)

// Ensure Deserialiser implements the interface.
var _ driven.Deserialiser = (*Deserialiser)(nil)

const enactedLayout = "2006-01-02"

// Deserialiser parses and validates public law XML bodies.
type Deserialiser struct{}

// NewDeserialiser creates a law deserialiser.
func NewDeserialiser() *Deserialiser {
	return &Deserialiser{}
}

// Kind returns the kind code this deserialiser handles.
func (d *Deserialiser) Kind() string { return Kind }

// Deserialise validates the byte stream and produces the law IR.
// Requires a <law> root, a non-empty title, and a parseable enacted date.
func (d *Deserialiser) Deserialise(_ context.Context, data []byte) (driven.IR, error) {
	var ir IR
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&ir); err != nil {
		var syntax *xml.SyntaxError
		if errors.As(err, &syntax) {
			return nil, &domain.ValidationError{Kind: Kind, Line: syntax.Line, Reason: syntax.Msg}
		}
		return nil, &domain.ValidationError{Kind: Kind, Reason: err.Error()}
	}

	if ir.Title == "" {
		return nil, &domain.ValidationError{Kind: Kind, Reason: "missing title"}
	}
	if ir.Enacted == "" {
		return nil, &domain.ValidationError{Kind: Kind, Reason: "missing enacted date"}
	}
	if _, err := time.Parse(enactedLayout, ir.Enacted); err != nil {
		return nil, &domain.ValidationError{
			Kind: Kind, Reason: "enacted date is not YYYY-MM-DD",
		}
	}

	return &ir, nil
}
