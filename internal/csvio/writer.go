package csvio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"time"

	"github.com/fitnz/fieldcheck/pkg/constants"
	"github.com/fitnz/fieldcheck/pkg/errors"
)

// Writer saves discrepancy reports as timestamp-suffixed CSV files.
type Writer struct {
	// Dir is the directory reports are written to.
	Dir string

	// Now supplies the timestamp for generated file names.
	// Defaults to time.Now when nil.
	Now func() time.Time
}

// NewWriter creates a Writer saving into dir.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Save writes the header row followed by one row per discrepancy to
// <stem>_<timestamp>.csv and returns the written path.
func (w *Writer) Save(stem string, headers []string, rows [][]string) (string, error) {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	name := filepath.Join(w.Dir, TimestampedName(stem, constants.CSVExtension, now()))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return "", errors.WrapIO("create", name, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		file.Close() //nolint:errcheck,gosec // write error takes precedence
		return "", errors.WrapIO("write", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		file.Close() //nolint:errcheck,gosec // write error takes precedence
		return "", errors.WrapIO("write", name, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close() //nolint:errcheck,gosec // write error takes precedence
		return "", errors.WrapIO("write", name, err)
	}

	if err := file.Close(); err != nil {
		return "", errors.WrapIO("close", name, err)
	}
	return name, nil
}
