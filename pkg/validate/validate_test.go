package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitnz/fieldcheck/pkg/validate"
)

var fieldsSchema = validate.Schema{
	Report: "fields",
	Title:  "Student Profile Fields Report",
	Columns: []validate.Column{
		{Name: "Student ID", Requirement: validate.RequirementKey},
		{Name: "First Name", Requirement: validate.RequirementSoft},
		{Name: "Last Name", Requirement: validate.RequirementSoft},
		{Name: "Data", Requirement: validate.RequirementHard},
	},
}

func TestCheckCleanRows(t *testing.T) {
	rows := [][]string{
		{"FitNZ0001", "Ann", "Lee", "Cert IV FitNZ0001 Smith"},
		{"FitNZ0002", "Bo", "Tan", "Diploma FitNZ0002 Jones"},
	}

	result := fieldsSchema.Check(rows)
	assert.False(t, result.HasWarnings())
	assert.False(t, result.HasErrors())
	assert.Equal(t, "Student Profile Fields Report", result.Title)
	assert.Equal(t, "Validation passed", result.String())
}

func TestCheckSeparatesWarningsFromErrors(t *testing.T) {
	rows := [][]string{
		{"FitNZ0001", "", "Lee", "some data"},   // soft omission
		{"FitNZ0002", "Bo", "Tan", ""},          // hard omission
		{"FitNZ0003", "", "", "more data"},      // two soft omissions
		{"FitNZ0004", "Di", "Moa", "fine data"}, // clean
	}

	result := fieldsSchema.Check(rows)

	require.Len(t, result.Warnings, 3)
	assert.Equal(t, "First Name is missing for student with Student ID FitNZ0001", result.Warnings[0])
	assert.Equal(t, "First Name is missing for student with Student ID FitNZ0003", result.Warnings[1])
	assert.Equal(t, "Last Name is missing for student with Student ID FitNZ0003", result.Warnings[2])

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Data is missing for student with Student ID FitNZ0002", result.Errors[0])

	assert.True(t, result.HasWarnings())
	assert.True(t, result.HasErrors())
	assert.Equal(t, "Validation found 3 warnings and 1 errors", result.String())
}

func TestCheckShortRowCountsAsEmpty(t *testing.T) {
	rows := [][]string{
		{"FitNZ0001", "Ann"}, // missing last name and data columns
	}

	result := fieldsSchema.Check(rows)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Last Name is missing for student with Student ID FitNZ0001", result.Warnings[0])
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Data is missing for student with Student ID FitNZ0001", result.Errors[0])
}

func TestParseSchema(t *testing.T) {
	data := []byte(`
report: studenttutors
title: Student Tutors Data
columns:
  - name: Student ID
    requirement: key
  - name: First Name
    requirement: soft
  - name: Tutor
    requirement: hard
`)

	schema, err := validate.ParseSchema(data)
	require.NoError(t, err)
	assert.Equal(t, "studenttutors", schema.Report)
	assert.Equal(t, "Student Tutors Data", schema.Title)
	require.Len(t, schema.Columns, 3)
	assert.Equal(t, validate.RequirementHard, schema.Columns[2].Requirement)
}

func TestParseSchemaRejectsMissingKey(t *testing.T) {
	data := []byte(`
report: broken
title: Broken
columns:
  - name: First Name
    requirement: soft
`)

	_, err := validate.ParseSchema(data)
	assert.Error(t, err)
}

func TestParseSchemaRejectsEmptyColumns(t *testing.T) {
	data := []byte("report: broken\ntitle: Broken\n")

	_, err := validate.ParseSchema(data)
	assert.Error(t, err)
}
