// Package records defines the typed dataset records fieldcheck reconciles:
// Student Profile Fields rows, the tutor roster, and the authoritative
// student-tutor pairing table, plus the discrepancy values the reconciliation
// engine emits.
//
// Records are parsed once from raw CSV rows at load time and are immutable
// for the duration of a reconciliation pass. The Student ID is the join key
// across datasets and is assumed unique within each dataset for a run.
package records

import (
	"github.com/fitnz/fieldcheck/pkg/errors"
)

// FieldRecord is one student's enrollment profile row from the Student
// Profile Fields report. Data is free text that may embed an identifier
// token and/or a tutor name as a substring.
type FieldRecord struct {
	StudentID string
	FirstName string
	LastName  string
	Data      string
}

// Pairing is one row of the authoritative student-tutor assignment table.
// It is maintained independently of the profile fields report.
type Pairing struct {
	StudentID string
	FirstName string
	LastName  string
	CourseID  string
	Tutor     string
}

// Pairings is the authoritative student-tutor assignment table.
type Pairings []Pairing

// ByStudent returns the pairing for the given student ID.
// Returns false when the student has no authoritative tutor on record.
func (p Pairings) ByStudent(id string) (Pairing, bool) {
	for _, pairing := range p {
		if pairing.StudentID == id {
			return pairing, true
		}
	}
	return Pairing{}, false
}

// Roster is the ordered list of valid tutor names. Order is significant:
// it defines the match precedence used during tutor reconciliation.
type Roster []string

// Column counts for the loaded datasets.
const (
	fieldRecordColumns = 4
	pairingColumns     = 5
)

// ParseFieldRecords converts raw CSV rows into FieldRecords.
// Rows must carry at least the four profile fields columns; a short row is a
// parse error since the report shape is fixed and positional.
func ParseFieldRecords(rows [][]string) ([]FieldRecord, error) {
	recs := make([]FieldRecord, 0, len(rows))
	for i, row := range rows {
		if len(row) < fieldRecordColumns {
			return nil, &errors.ParseError{Format: "csv", Line: i + 1,
				Message: "student profile fields row has too few columns"}
		}
		recs = append(recs, FieldRecord{
			StudentID: row[0],
			FirstName: row[1],
			LastName:  row[2],
			Data:      row[3],
		})
	}
	return recs, nil
}

// ParsePairings converts raw CSV rows into the pairing table.
func ParsePairings(rows [][]string) (Pairings, error) {
	pairings := make(Pairings, 0, len(rows))
	for i, row := range rows {
		if len(row) < pairingColumns {
			return nil, &errors.ParseError{Format: "csv", Line: i + 1,
				Message: "student-tutor pairing row has too few columns"}
		}
		pairings = append(pairings, Pairing{
			StudentID: row[0],
			FirstName: row[1],
			LastName:  row[2],
			CourseID:  row[3],
			Tutor:     row[4],
		})
	}
	return pairings, nil
}

// ParseRoster extracts tutor names from raw CSV rows, one name per row,
// first column. Empty rows are skipped.
func ParseRoster(rows [][]string) Roster {
	roster := make(Roster, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		roster = append(roster, row[0])
	}
	return roster
}
