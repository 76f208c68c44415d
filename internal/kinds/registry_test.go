package kinds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/kinds/bill"
	"github.com/openlegis/lexfeed/internal/kinds/law"
)

func TestDefaults_RegistersBuiltinKinds(t *testing.T) {
	r := Defaults()
	assert.Equal(t, []string{"bill", "law"}, r.Kinds())

	for _, kind := range r.Kinds() {
		des, mapper, err := r.Resolve(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, des.Kind())
		assert.Equal(t, kind, mapper.Kind())
	}
}

func TestResolve_UnknownKind(t *testing.T) {
	r := Defaults()

	_, _, err := r.Resolve("report")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)

	var ukerr *domain.UnknownKindError
	require.ErrorAs(t, err, &ukerr)
	assert.Equal(t, "report", ukerr.Kind)
}

func TestRegister_RejectsIncompleteEntry(t *testing.T) {
	r := New()
	err := r.Register(Entry{Kind: "partial"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RejectsDuplicateKind(t *testing.T) {
	r := New()
	entry := Entry{
		Kind:         bill.Kind,
		Pattern:      bill.Pattern,
		Identify:     bill.Identify,
		Deserialiser: bill.NewDeserialiser(),
		Mapper:       bill.NewMapper(),
	}
	require.NoError(t, r.Register(entry))
	assert.Error(t, r.Register(entry))
}

// ==================== Filename Extraction ====================

func TestExtract_BillFilename(t *testing.T) {
	r := Defaults()

	id, err := r.Extract("BILLS-119thCongress-HR1.xml", time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "bill", id.Kind)
	assert.Equal(t, "BILLS", id.Collection)
	assert.Equal(t, 119, id.Congress)
	assert.Equal(t, "HR", id.DocType)
	assert.Equal(t, 1, id.Number)
	// No date group in the name: falls back to mtime.
	assert.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), id.Published)
}

func TestExtract_BillFilenameWithPublishedDate(t *testing.T) {
	r := Defaults()

	id, err := r.Extract("BILLS-118thCongress-s2045-20230117.xml", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 118, id.Congress)
	assert.Equal(t, "S", id.DocType, "type code is uppercased")
	assert.Equal(t, 2045, id.Number)
	assert.Equal(t, time.Date(2023, 1, 17, 0, 0, 0, 0, time.UTC), id.Published)
}

func TestExtract_LawFilename(t *testing.T) {
	r := Defaults()

	id, err := r.Extract("PLAW-119publ5.xml", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "law", id.Kind)
	assert.Equal(t, "PLAW", id.Collection)
	assert.Equal(t, 119, id.Congress)
	assert.Equal(t, law.DocType, id.DocType)
	assert.Equal(t, 5, id.Number)
}

func TestExtract_UnparseableNameIsHardFailure(t *testing.T) {
	r := Defaults()

	names := []string{
		"BILLS-HR1.xml",
		"notes.txt",
		"PLAW-119.xml",
		"BILLS-119thCongress-HR1.json",
		"",
	}
	for _, name := range names {
		_, err := r.Extract(name, time.Now())
		assert.ErrorIs(t, err, domain.ErrExtraction, "name %q", name)
	}
}
