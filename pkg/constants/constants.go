// Package constants provides shared constants used throughout the fieldcheck
// codebase. This includes the identifier marker convention, file permissions,
// and naming conventions that should be consistent across the application.
package constants

// Identifier token constants define the embedded Student ID convention used
// in the Learning Platform's free-text course information field.
const (
	// IdentifierMarker is the literal substring that marks an embedded
	// Student ID inside the course information field.
	IdentifierMarker = "FitNZ"

	// IdentifierWidth is the total width of an embedded Student ID token:
	// the marker followed by a fixed-width numeric suffix.
	IdentifierWidth = 9
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// File naming constants define the conventions for generated files
const (
	// CSVExtension is the extension appended to load and save file stems.
	CSVExtension = ".csv"

	// LogExtension is the extension used for warning and error logs.
	LogExtension = ".txt"

	// TimestampLayout is the layout used to suffix generated file names.
	TimestampLayout = "2006-01-02-15-04-05"
)

// Report name constants identify the datasets a run can load
const (
	// FieldsReport is the Student Profile Fields dataset.
	FieldsReport = "fields"

	// StudentTutorsReport is the student-tutor pairings dataset.
	StudentTutorsReport = "studenttutors"
)

// Default file stem constants match the exported report names
const (
	// DefaultRosterStem is the default file stem for the tutor roster.
	DefaultRosterStem = "tutors"

	// DefaultPairingsStem is the default file stem for student-tutor pairings.
	DefaultPairingsStem = "studentstutors"
)
