// Package csvio implements the file collaborators the reconciliation core is
// specified against: a CSV loader that reprompts on missing files, a
// timestamped report writer, and the warning and error log sinks.
package csvio

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/fitnz/fieldcheck/pkg/constants"
	"github.com/fitnz/fieldcheck/pkg/errors"
	"github.com/fitnz/fieldcheck/pkg/logging"
)

// PromptFunc asks the user for a corrected file stem after a failed open.
type PromptFunc func(ctx context.Context, stem string) (string, error)

// Loader reads exported report snapshots from disk. A missing file is not an
// error: the loader reprompts for a corrected stem until a file opens or the
// context is canceled.
type Loader struct {
	// Dir is the directory report files are read from.
	Dir string

	// Prompt supplies a corrected stem when a file does not exist.
	// A nil Prompt turns file-not-found into an error instead.
	Prompt PromptFunc
}

// NewLoader creates a Loader reading from dir.
func NewLoader(dir string, prompt PromptFunc) *Loader {
	return &Loader{Dir: dir, Prompt: prompt}
}

// Load reads <stem>.csv, skips the single header line, and returns the
// remaining rows. Rows whose first field is empty are dropped.
func (l *Loader) Load(ctx context.Context, stem string) ([][]string, error) {
	file, err := l.open(ctx, stem)
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // shape is validated downstream

	// Skip the header line.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.WrapParse("csv", file.Name(), err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", file.Name(), err)
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}
		rows = append(rows, row)
	}

	logging.FromContext(ctx).Debug().
		Str("file", file.Name()).
		Int("rows", len(rows)).
		Msg("Loaded report")

	return rows, nil
}

// open opens <stem>.csv, reprompting for a corrected stem while the file
// does not exist.
func (l *Loader) open(ctx context.Context, stem string) (*os.File, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.ErrCanceled
		}

		name := filepath.Join(l.Dir, stem+constants.CSVExtension)
		file, err := os.Open(name)
		if err == nil {
			return file, nil
		}
		if !os.IsNotExist(err) {
			return nil, errors.WrapIO("open", name, err)
		}
		if l.Prompt == nil {
			return nil, errors.NewNotFoundError("report file", name)
		}

		corrected, promptErr := l.Prompt(ctx, stem)
		if promptErr != nil {
			return nil, promptErr
		}
		stem = corrected
	}
}
