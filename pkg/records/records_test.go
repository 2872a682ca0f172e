package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitnz/fieldcheck/pkg/errors"
	"github.com/fitnz/fieldcheck/pkg/records"
)

func TestParseFieldRecords(t *testing.T) {
	rows := [][]string{
		{"FitNZ0001", "Ann", "Lee", "Cert IV FitNZ0001 Smith"},
		{"FitNZ0002", "Bo", "Tan", "Diploma", "extra column ignored"},
	}

	recs, err := records.ParseFieldRecords(rows)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "FitNZ0001", recs[0].StudentID)
	assert.Equal(t, "Ann", recs[0].FirstName)
	assert.Equal(t, "Lee", recs[0].LastName)
	assert.Equal(t, "Cert IV FitNZ0001 Smith", recs[0].Data)
	assert.Equal(t, "Diploma", recs[1].Data)
}

func TestParseFieldRecordsShortRow(t *testing.T) {
	rows := [][]string{
		{"FitNZ0001", "Ann", "Lee", "ok"},
		{"FitNZ0002", "Bo"},
	}

	_, err := records.ParseFieldRecords(rows)
	require.Error(t, err)

	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParsePairings(t *testing.T) {
	rows := [][]string{
		{"FitNZ0001", "Ann", "Lee", "CRS-100", "Smith"},
		{"FitNZ0002", "Bo", "Tan", "CRS-200", "Jones"},
	}

	pairings, err := records.ParsePairings(rows)
	require.NoError(t, err)
	require.Len(t, pairings, 2)
	assert.Equal(t, "CRS-100", pairings[0].CourseID)
	assert.Equal(t, "Jones", pairings[1].Tutor)
}

func TestParsePairingsShortRow(t *testing.T) {
	rows := [][]string{{"FitNZ0001", "Ann", "Lee", "CRS-100"}}

	_, err := records.ParsePairings(rows)
	require.Error(t, err)
}

func TestPairingsByStudent(t *testing.T) {
	pairings := records.Pairings{
		{StudentID: "FitNZ0001", Tutor: "Smith"},
		{StudentID: "FitNZ0002", Tutor: "Jones"},
	}

	pairing, ok := pairings.ByStudent("FitNZ0002")
	require.True(t, ok)
	assert.Equal(t, "Jones", pairing.Tutor)

	_, ok = pairings.ByStudent("FitNZ9999")
	assert.False(t, ok)
}

func TestParseRoster(t *testing.T) {
	rows := [][]string{
		{"Smith"},
		{"Jones", "ignored trailing column"},
		{},
		{""},
		{"Smithers"},
	}

	roster := records.ParseRoster(rows)
	assert.Equal(t, records.Roster{"Smith", "Jones", "Smithers"}, roster)
}

func TestDiscrepancyRows(t *testing.T) {
	m := records.MissingIdentifier{StudentID: "FitNZ0001", FirstName: "Ann", LastName: "Lee"}
	assert.Equal(t, []string{"FitNZ0001", "Ann", "Lee"}, m.Row())

	d := records.TutorDiscrepancy{StudentID: "FitNZ0002", FirstName: "Bo", LastName: "Tan", Tutor: "Jones"}
	assert.Equal(t, []string{"FitNZ0002", "Bo", "Tan", "Jones"}, d.Row())
}
