package bill

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
)

// Ensure Mapper implements the interface.
var _ driven.Mapper = (*Mapper)(nil)

// textSeparator joins text segments in the canonical body.
const textSeparator = "\n\n"

// Mapper normalises bill IRs into canonical documents.
type Mapper struct{}

// NewMapper creates a bill mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Kind returns the kind code this mapper handles.
func (m *Mapper) Kind() string { return Kind }

// Map converts a bill IR into the canonical aggregate. Session year is
// derived from the identity's congress number; actions are classified into
// the closed vocabulary and ordered by date with source order as the
// tie-breaker.
func (m *Mapper) Map(_ context.Context, ir driven.IR, identity domain.ArtifactIdentity) (*domain.Document, error) {
	billIR, ok := ir.(*IR)
	if !ok {
		return nil, &domain.MappingError{Kind: Kind, Reason: "unexpected IR type"}
	}
	if !domain.ValidCongress(identity.Congress) {
		return nil, &domain.MappingError{Kind: Kind, Reason: "congress number out of range"}
	}

	doc := &domain.Document{
		DocType:     identity.DocType,
		Number:      identity.Number,
		SessionYear: domain.SessionYear(identity.Congress),
		Title:       billIR.OfficialTitle,
		Sponsors:    mapSponsors(billIR.Sponsors),
		Actions:     mapActions(billIR.Actions),
		Text:        joinSegments(billIR.TextVersions),
		Provenance: domain.Provenance{
			Congress:  identity.Congress,
			Source:    identity.Collection,
			Published: identity.Published,
		},
	}
	return doc, nil
}

// mapSponsors converts sponsor descriptors. Legislator references start as
// unresolved placeholders; resolution happens downstream.
func mapSponsors(irs []SponsorIR) []domain.Sponsor {
	sponsors := make([]domain.Sponsor, 0, len(irs))
	for _, s := range irs {
		sponsors = append(sponsors, domain.Sponsor{
			Name:  strings.TrimSpace(s.Name),
			Party: strings.ToUpper(strings.TrimSpace(s.Party)),
			State: strings.ToUpper(strings.TrimSpace(s.State)),
		})
	}
	return sponsors
}

// mapActions classifies and orders action descriptors. The sort is stable,
// so equal dates keep their source order.
func mapActions(irs []ActionIR) []domain.Action {
	actions := make([]domain.Action, 0, len(irs))
	for i, a := range irs {
		// The deserialiser already validated the date format.
		date, _ := time.Parse(actionDateLayout, a.Date)
		chamber := domain.NormalizeChamber(a.Chamber)
		actions = append(actions, domain.Action{
			Date:     date,
			Chamber:  chamber,
			Type:     domain.ClassifyAction(a.Text, chamber),
			Text:     a.Text,
			Position: i,
		})
	}
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Date.Before(actions[j].Date)
	})
	return actions
}

// joinSegments concatenates text segments in source order with a single
// separator. Empty segments are skipped, not inserted as blank lines.
func joinSegments(irs []TextIR) string {
	segments := make([]string, 0, len(irs))
	for _, t := range irs {
		content := strings.TrimSpace(t.Content)
		if content == "" {
			continue
		}
		segments = append(segments, content)
	}
	return strings.Join(segments, textSeparator)
}
