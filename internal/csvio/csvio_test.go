package csvio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitnz/fieldcheck/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fields.csv",
		"idnumber,firstname,lastname,data\n"+
			`FitNZ0001,Ann,Lee,"Cert IV, FitNZ0001 Smith"`+"\n"+
			",skipped,row,empty key\n"+
			"FitNZ0002,Bo,Tan,Diploma\n")

	loader := NewLoader(dir, nil)
	rows, err := loader.Load(context.Background(), "fields")
	require.NoError(t, err)

	require.Len(t, rows, 2, "header skipped and empty-key row dropped")
	assert.Equal(t, []string{"FitNZ0001", "Ann", "Lee", "Cert IV, FitNZ0001 Smith"}, rows[0])
	assert.Equal(t, []string{"FitNZ0002", "Bo", "Tan", "Diploma"}, rows[1])
}

func TestLoaderHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fields.csv", "idnumber,firstname,lastname,data\n")

	loader := NewLoader(dir, nil)
	rows, err := loader.Load(context.Background(), "fields")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoaderRepromptsUntilFileExists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tutors.csv", "name\nSmith\n")

	attempts := []string{"tutros", "tutor", "tutors"}
	var prompted []string
	i := 0
	prompt := func(_ context.Context, stem string) (string, error) {
		prompted = append(prompted, stem)
		next := attempts[i+1]
		i++
		return next, nil
	}

	loader := NewLoader(dir, prompt)
	rows, err := loader.Load(context.Background(), attempts[0])
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Smith", rows[0][0])
	assert.Equal(t, []string{"tutros", "tutor"}, prompted, "prompted once per missing file")
}

func TestLoaderMissingFileNoPrompt(t *testing.T) {
	loader := NewLoader(t.TempDir(), nil)
	_, err := loader.Load(context.Background(), "absent")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestLoaderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(t.TempDir(), func(context.Context, string) (string, error) {
		t.Fatal("prompt should not run after cancellation")
		return "", nil
	})

	_, err := loader.Load(ctx, "absent")
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

func TestWriterSave(t *testing.T) {
	dir := t.TempDir()
	stamp := time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC)
	writer := &Writer{Dir: dir, Now: func() time.Time { return stamp }}

	path, err := writer.Save("Missing_Student_IDs",
		[]string{"Student ID", "First Name", "Last Name"},
		[][]string{
			{"FitNZ0002", "Bo", "Tan"},
			{"FitNZ0003", "Cy", "Ng"},
		})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Missing_Student_IDs_2026-08-25-09-30-00.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Student ID,First Name,Last Name\nFitNZ0002,Bo,Tan\nFitNZ0003,Cy,Ng\n",
		string(data))
}

func TestWriterSaveNoRows(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	path, err := writer.Save("Missing_Tutors", []string{"Student ID", "Tutor"}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Student ID,Tutor\n", string(data), "header row is always written")
}

func TestErrorLogRecord(t *testing.T) {
	dir := t.TempDir()
	stamp := time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC)
	log := &ErrorLog{Dir: dir, Now: func() time.Time { return stamp }}

	path, err := log.Record("Student Profile Fields Report", []string{
		"Data is missing for student with Student ID FitNZ0002",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Error_Log_2026-08-25-09-30-00.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Student Profile Fields Report Errors:\n\n"+
			"Data is missing for student with Student ID FitNZ0002\n",
		string(data))
}

func TestWarningLogRecord(t *testing.T) {
	dir := t.TempDir()
	log := NewWarningLog(dir)

	path, err := log.Record("Student Tutors Data", []string{
		"First Name is missing for student with Student ID FitNZ0001",
		"Course is missing for student with Student ID FitNZ0003",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Student Tutors Data Warnings:")
	assert.Contains(t, string(data), "Course is missing for student with Student ID FitNZ0003")
}

func TestTimestampedName(t *testing.T) {
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "Missing_Tutors_2026-01-02-03-04-05.csv",
		TimestampedName("Missing_Tutors", ".csv", stamp))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Student Profile Fields", DisplayName("student_profile_fields"))
	assert.Equal(t, "Tutors", DisplayName("tutors"))
	assert.Equal(t, "Missing Student IDs", DisplayName("Missing_Student_IDs"))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "Missing_Student_IDs", Stem("Missing Student IDs"))
}
