package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fitnz/fieldcheck/pkg/constants"
	"github.com/fitnz/fieldcheck/pkg/errors"
)

// ErrorLog persists fatal-field errors, keyed by the report they came from.
// Recording is a side effect of validation, never a blocking failure.
type ErrorLog struct {
	Dir string
	Now func() time.Time
}

// NewErrorLog creates an ErrorLog writing into dir.
func NewErrorLog(dir string) *ErrorLog {
	return &ErrorLog{Dir: dir}
}

// Record writes the error entries to a timestamped error log file and
// returns the written path.
func (l *ErrorLog) Record(report string, errs []string) (string, error) {
	return writeLog(l.Dir, "Error_Log", report+" Errors:", errs, l.Now)
}

// WarningLog persists non-fatal validation warnings. Callers only invoke it
// when warnings were actually produced.
type WarningLog struct {
	Dir string
	Now func() time.Time
}

// NewWarningLog creates a WarningLog writing into dir.
func NewWarningLog(dir string) *WarningLog {
	return &WarningLog{Dir: dir}
}

// Record writes the warning entries to a timestamped warning log file and
// returns the written path.
func (l *WarningLog) Record(title string, warnings []string) (string, error) {
	return writeLog(l.Dir, "Warning_Log", title+" Warnings:", warnings, l.Now)
}

// writeLog writes a titled entry list to <stem>_<timestamp>.txt.
func writeLog(dir, stem, title string, entries []string, clock func() time.Time) (string, error) {
	now := time.Now
	if clock != nil {
		now = clock
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, entry := range entries {
		b.WriteString(entry)
		b.WriteString("\n")
	}

	name := filepath.Join(dir, TimestampedName(stem, constants.LogExtension, now()))
	if err := os.WriteFile(name, []byte(b.String()), constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", name, err)
	}
	return name, nil
}
