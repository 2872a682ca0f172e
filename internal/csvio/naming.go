package csvio

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fitnz/fieldcheck/pkg/constants"
)

// NoLower keeps acronyms like "IDs" intact when titling stems.
var titleCaser = cases.Title(language.English, cases.NoLower)

// TimestampedName builds the file name for a generated report or log:
// the stem, a timestamp suffix, and the extension.
func TimestampedName(stem, ext string, now time.Time) string {
	return stem + "_" + now.Format(constants.TimestampLayout) + ext
}

// DisplayName renders a file stem as a human-readable title for prompts and
// log messages, e.g. "student_profile_fields" becomes "Student Profile Fields".
func DisplayName(stem string) string {
	return titleCaser.String(strings.ReplaceAll(stem, "_", " "))
}

// Stem renders a report title as a file stem, e.g. "Missing Student IDs"
// becomes "Missing_Student_IDs".
func Stem(title string) string {
	return strings.ReplaceAll(title, " ", "_")
}
