package law

import (
	"context"
	"strings"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
)

// Ensure Mapper implements the interface.
var _ driven.Mapper = (*Mapper)(nil)

const textSeparator = "\n\n"

// Mapper normalises law IRs into canonical documents.
type Mapper struct{}

// NewMapper creates a law mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Kind returns the kind code this mapper handles.
func (m *Mapper) Kind() string { return Kind }

// Map converts a law IR into the canonical aggregate. Public laws carry no
// sponsor list in the source feed; the enactment date becomes a single
// BECAME_LAW action so the chronological model stays uniform across kinds.
func (m *Mapper) Map(_ context.Context, ir driven.IR, identity domain.ArtifactIdentity) (*domain.Document, error) {
	lawIR, ok := ir.(*IR)
	if !ok {
		return nil, &domain.MappingError{Kind: Kind, Reason: "unexpected IR type"}
	}
	if !domain.ValidCongress(identity.Congress) {
		return nil, &domain.MappingError{Kind: Kind, Reason: "congress number out of range"}
	}

	// The deserialiser already validated the date format.
	enacted, _ := time.Parse(enactedLayout, lawIR.Enacted)

	doc := &domain.Document{
		DocType:     identity.DocType,
		Number:      identity.Number,
		SessionYear: domain.SessionYear(identity.Congress),
		Title:       lawIR.Title,
		Actions: []domain.Action{{
			Date:    enacted,
			Chamber: domain.ChamberUnknown,
			Type:    domain.ActionBecameLaw,
			Text:    "Became Public Law",
		}},
		Text: joinSections(lawIR.Sections),
		Provenance: domain.Provenance{
			Congress:  identity.Congress,
			Source:    identity.Collection,
			Published: identity.Published,
		},
	}
	return doc, nil
}

// joinSections concatenates section text in source order, skipping empty
// sections.
func joinSections(sections []SectionIR) string {
	segments := make([]string, 0, len(sections))
	for _, s := range sections {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		segments = append(segments, text)
	}
	return strings.Join(segments, textSeparator)
}
