package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainMenu(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Action
	}{
		{"check identifiers", "1\n", ActionCheckIdentifiers},
		{"check tutors", "2\n", ActionCheckTutors},
		{"exit", "3\n", ActionExit},
		{"reprompts on junk", "banana\n2\n", ActionCheckTutors},
		{"reprompts on out of range", "7\n0\n3\n", ActionExit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)

			action, err := p.MainMenu()
			require.NoError(t, err)
			assert.Equal(t, tt.want, action)
			assert.Contains(t, out.String(), "1 Check Student IDs")
		})
	}
}

func TestFileStem(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("my_fields_export\n"), &out)

	stem, err := p.FileStem("Student Profile Fields", "")
	require.NoError(t, err)
	assert.Equal(t, "my_fields_export", stem)
}

func TestFileStemDefault(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n"), &out)

	stem, err := p.FileStem("Tutors", "tutors")
	require.NoError(t, err)
	assert.Equal(t, "tutors", stem)
	assert.Contains(t, out.String(), "[tutors]")
}

func TestCorrectedStem(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("fields2\n"), &out)

	stem, err := p.CorrectedStem(context.Background(), "fields")
	require.NoError(t, err)
	assert.Equal(t, "fields2", stem)
	assert.Contains(t, out.String(), "The file fields.csv does not exist")
}

func TestCorrectedStemCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(strings.NewReader("ignored\n"), &bytes.Buffer{})
	_, err := p.CorrectedStem(ctx, "fields")
	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"maybe\n", true, true},
	}

	for _, tt := range tests {
		p := New(strings.NewReader(tt.input), &bytes.Buffer{})
		got, err := p.Confirm("Process another file?", tt.def)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q default %v", tt.input, tt.def)
	}
}
