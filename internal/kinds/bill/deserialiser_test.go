package bill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

const validBillXML = `<?xml version="1.0"?>
<bill>
  <officialTitle>For the People Act</officialTitle>
  <sponsors>
    <item><name>John Doe</name><party>D</party><state>NY</state></item>
  </sponsors>
  <actions>
    <item><date>2025-01-03</date><chamber>House</chamber><text>Introduced in House</text></item>
  </actions>
  <textVersions>
    <item format="xml">Be it enacted by the Senate and House of Representatives.</item>
  </textVersions>
</bill>`

func TestDeserialise_ValidBill(t *testing.T) {
	ir, err := NewDeserialiser().Deserialise(context.Background(), []byte(validBillXML))
	require.NoError(t, err)

	billIR, ok := ir.(*IR)
	require.True(t, ok)
	assert.Equal(t, "For the People Act", billIR.OfficialTitle)
	require.Len(t, billIR.Sponsors, 1)
	assert.Equal(t, "John Doe", billIR.Sponsors[0].Name)
	assert.Equal(t, "D", billIR.Sponsors[0].Party)
	require.Len(t, billIR.Actions, 1)
	assert.Equal(t, "2025-01-03", billIR.Actions[0].Date)
	require.Len(t, billIR.TextVersions, 1)
	assert.Equal(t, "xml", billIR.TextVersions[0].Format)
}

func TestDeserialise_MalformedXML(t *testing.T) {
	_, err := NewDeserialiser().Deserialise(context.Background(), []byte("<bill><officialTitle>broken"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeserialise_WrongRootElement(t *testing.T) {
	_, err := NewDeserialiser().Deserialise(context.Background(), []byte("<law><title>x</title></law>"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeserialise_MissingTitle(t *testing.T) {
	_, err := NewDeserialiser().Deserialise(context.Background(), []byte("<bill></bill>"))
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "officialTitle")
}

func TestDeserialise_BadActionDate(t *testing.T) {
	body := `<bill>
  <officialTitle>T</officialTitle>
  <actions><item><date>03/01/2025</date><chamber>House</chamber><text>Introduced</text></item></actions>
</bill>`
	_, err := NewDeserialiser().Deserialise(context.Background(), []byte(body))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeserialise_SyntaxErrorCarriesLine(t *testing.T) {
	body := "<bill>\n  <officialTitle>T</officialTitle>\n  <unclosed>\n</bill>"
	_, err := NewDeserialiser().Deserialise(context.Background(), []byte(body))
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Greater(t, verr.Line, 0)
}
