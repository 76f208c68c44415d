package bill

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

func testIdentity() domain.ArtifactIdentity {
	return domain.ArtifactIdentity{
		Kind:       Kind,
		Collection: Collection,
		Congress:   119,
		DocType:    "HR",
		Number:     1,
		Published:  time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestMap_CanonicalScenario(t *testing.T) {
	ir := &IR{
		OfficialTitle: "For the People Act",
		Sponsors:      []SponsorIR{{Name: "John Doe", Party: "D", State: "NY"}},
		Actions: []ActionIR{
			{Date: "2025-01-03", Chamber: "House", Text: "Introduced in House"},
		},
		TextVersions: []TextIR{{Content: "Section 1."}},
	}

	doc, err := NewMapper().Map(context.Background(), ir, testIdentity())
	require.NoError(t, err)

	assert.Equal(t, "HR", doc.DocType)
	assert.Equal(t, 1, doc.Number)
	assert.Equal(t, 2025, doc.SessionYear)
	assert.Equal(t, "For the People Act", doc.Title)
	require.Len(t, doc.Sponsors, 1)
	require.Len(t, doc.Actions, 1)
	assert.Equal(t, domain.ActionIntroducedHouse, doc.Actions[0].Type)
	assert.Equal(t, domain.ChamberHouse, doc.Actions[0].Chamber)
	assert.Equal(t, 119, doc.Provenance.Congress)
	assert.Equal(t, "BILLS", doc.Provenance.Source)
	assert.Equal(t, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), doc.Provenance.Published)
}

func TestMap_SessionYearDerivedNotHandSet(t *testing.T) {
	ir := &IR{OfficialTitle: "T"}

	id := testIdentity()
	id.Congress = 118
	doc, err := NewMapper().Map(context.Background(), ir, id)
	require.NoError(t, err)
	assert.Equal(t, 2023, doc.SessionYear)

	id.Congress = 119
	doc, err = NewMapper().Map(context.Background(), ir, id)
	require.NoError(t, err)
	assert.Equal(t, 2025, doc.SessionYear)
}

func TestMap_ActionOrdering(t *testing.T) {
	ir := &IR{
		OfficialTitle: "T",
		Actions: []ActionIR{
			{Date: "2025-02-10", Chamber: "Senate", Text: "Passed Senate"},
			{Date: "2025-01-03", Chamber: "House", Text: "Introduced in House"},
			{Date: "2025-01-03", Chamber: "House", Text: "Referred to committee"},
			{Date: "2025-01-20", Chamber: "House", Text: "Passed House"},
		},
	}

	doc, err := NewMapper().Map(context.Background(), ir, testIdentity())
	require.NoError(t, err)
	require.Len(t, doc.Actions, 4)

	// Non-decreasing by date.
	for i := 1; i < len(doc.Actions); i++ {
		assert.False(t, doc.Actions[i].Date.Before(doc.Actions[i-1].Date))
	}

	// Equal dates keep source order: "Introduced" appeared before "Referred".
	assert.Equal(t, "Introduced in House", doc.Actions[0].Text)
	assert.Equal(t, "Referred to committee", doc.Actions[1].Text)
	assert.Equal(t, "Passed Senate", doc.Actions[3].Text)
}

func TestMap_UnclassifiableActionDoesNotFail(t *testing.T) {
	ir := &IR{
		OfficialTitle: "T",
		Actions:       []ActionIR{{Date: "2025-01-03", Chamber: "", Text: "Remarks printed"}},
	}

	doc, err := NewMapper().Map(context.Background(), ir, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, domain.ActionUnknown, doc.Actions[0].Type)
	assert.Equal(t, domain.ChamberUnknown, doc.Actions[0].Chamber)
}

func TestMap_TextSegments(t *testing.T) {
	ir := &IR{
		OfficialTitle: "T",
		TextVersions: []TextIR{
			{Content: "First segment."},
			{Content: "   "},
			{Content: "Second segment."},
		},
	}

	doc, err := NewMapper().Map(context.Background(), ir, testIdentity())
	require.NoError(t, err)
	// Empty segments are skipped, not inserted as blank lines.
	assert.Equal(t, "First segment.\n\nSecond segment.", doc.Text)
}

func TestMap_SparseDocumentIsValid(t *testing.T) {
	ir := &IR{OfficialTitle: "Sparse Bill"}

	doc, err := NewMapper().Map(context.Background(), ir, testIdentity())
	require.NoError(t, err)
	assert.Empty(t, doc.Sponsors)
	assert.Empty(t, doc.Actions)
	assert.Equal(t, "Sparse Bill", doc.Title)
	assert.Equal(t, 2025, doc.SessionYear)
}

func TestMap_RejectsWrongIRType(t *testing.T) {
	_, err := NewMapper().Map(context.Background(), fakeIR{}, testIdentity())
	assert.ErrorIs(t, err, domain.ErrMapping)
}

func TestMap_RejectsInvalidCongress(t *testing.T) {
	id := testIdentity()
	id.Congress = 0
	_, err := NewMapper().Map(context.Background(), &IR{OfficialTitle: "T"}, id)
	assert.ErrorIs(t, err, domain.ErrMapping)
}

// fakeIR simulates an IR from another kind reaching the wrong mapper.
type fakeIR struct{}

func (fakeIR) IRKind() string { return "other" }
