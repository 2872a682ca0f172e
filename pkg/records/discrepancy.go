package records

// MissingIdentifier flags a student whose course information field has no
// correctly embedded Student ID token.
type MissingIdentifier struct {
	StudentID string
	FirstName string
	LastName  string
}

// Row returns the discrepancy as an ordered CSV row.
func (m MissingIdentifier) Row() []string {
	return []string{m.StudentID, m.FirstName, m.LastName}
}

// MissingIdentifierHeaders are the column headings for missing-identifier output.
var MissingIdentifierHeaders = []string{"Student ID", "First Name", "Last Name"}

// TutorDiscrepancy flags a student whose course information field has a
// missing or inconsistent tutor reference. Tutor carries the authoritative
// value from the pairing table, which may be empty when no pairing exists.
type TutorDiscrepancy struct {
	StudentID string
	FirstName string
	LastName  string
	Tutor     string
}

// Row returns the discrepancy as an ordered CSV row.
func (d TutorDiscrepancy) Row() []string {
	return []string{d.StudentID, d.FirstName, d.LastName, d.Tutor}
}

// TutorDiscrepancyHeaders are the column headings for missing/wrong-tutor output.
var TutorDiscrepancyHeaders = []string{"Student ID", "First Name", "Last Name", "Tutor"}
