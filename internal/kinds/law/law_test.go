package law

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

const validLawXML = `<?xml version="1.0"?>
<law>
  <title>An Act to improve disaster relief</title>
  <enacted>2025-03-15</enacted>
  <sections>
    <section number="1">Short title.</section>
    <section number="2">Definitions.</section>
  </sections>
</law>`

func TestDeserialise_ValidLaw(t *testing.T) {
	ir, err := NewDeserialiser().Deserialise(context.Background(), []byte(validLawXML))
	require.NoError(t, err)

	lawIR, ok := ir.(*IR)
	require.True(t, ok)
	assert.Equal(t, "An Act to improve disaster relief", lawIR.Title)
	assert.Equal(t, "2025-03-15", lawIR.Enacted)
	require.Len(t, lawIR.Sections, 2)
	assert.Equal(t, "1", lawIR.Sections[0].Number)
}

func TestDeserialise_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "<law><title>broken"},
		{"missing title", "<law><enacted>2025-03-15</enacted></law>"},
		{"missing enacted", "<law><title>T</title></law>"},
		{"bad enacted date", "<law><title>T</title><enacted>15 March 2025</enacted></law>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDeserialiser().Deserialise(context.Background(), []byte(tt.body))
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestMap_Law(t *testing.T) {
	ir, err := NewDeserialiser().Deserialise(context.Background(), []byte(validLawXML))
	require.NoError(t, err)

	identity := domain.ArtifactIdentity{
		Kind:       Kind,
		Collection: Collection,
		Congress:   119,
		DocType:    DocType,
		Number:     5,
		Published:  time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
	}

	doc, err := NewMapper().Map(context.Background(), ir, identity)
	require.NoError(t, err)

	assert.Equal(t, "PUB", doc.DocType)
	assert.Equal(t, 5, doc.Number)
	assert.Equal(t, 2025, doc.SessionYear)
	assert.Equal(t, "An Act to improve disaster relief", doc.Title)
	assert.Empty(t, doc.Sponsors, "laws carry no sponsor list")
	require.Len(t, doc.Actions, 1)
	assert.Equal(t, domain.ActionBecameLaw, doc.Actions[0].Type)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), doc.Actions[0].Date)
	assert.Equal(t, "Short title.\n\nDefinitions.", doc.Text)
	assert.Equal(t, "PLAW", doc.Provenance.Source)
}

func TestMap_RejectsWrongIRType(t *testing.T) {
	_, err := NewMapper().Map(context.Background(), otherIR{}, domain.ArtifactIdentity{Congress: 119})
	assert.ErrorIs(t, err, domain.ErrMapping)
}

type otherIR struct{}

func (otherIR) IRKind() string { return "other" }
