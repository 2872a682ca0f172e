package embedded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitnz/fieldcheck/pkg/errors"
	"github.com/fitnz/fieldcheck/pkg/validate"
)

func TestSchemaFields(t *testing.T) {
	schema, err := Schema("fields")
	require.NoError(t, err)

	assert.Equal(t, "fields", schema.Report)
	assert.Equal(t, "Student Profile Fields Report", schema.Title)
	require.Len(t, schema.Columns, 4)
	assert.Equal(t, validate.RequirementKey, schema.Columns[0].Requirement)
	assert.Equal(t, validate.RequirementHard, schema.Columns[3].Requirement)
}

func TestSchemaStudentTutors(t *testing.T) {
	schema, err := Schema("studenttutors")
	require.NoError(t, err)

	assert.Equal(t, "Student Tutors Data", schema.Title)
	require.Len(t, schema.Columns, 5)
	assert.Equal(t, "Tutor", schema.Columns[4].Name)
	assert.Equal(t, validate.RequirementHard, schema.Columns[4].Requirement)
}

func TestSchemaUnknownReport(t *testing.T) {
	_, err := Schema("payroll")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestReports(t *testing.T) {
	reports := Reports()
	assert.Contains(t, reports, "fields")
	assert.Contains(t, reports, "studenttutors")
}
