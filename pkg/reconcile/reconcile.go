// Package reconcile implements the discrepancy-detection engine: it verifies
// the embedded Student ID token in each enrollment record and cross-references
// free-text tutor mentions against the roster and the authoritative pairing
// table.
//
// Both checks are pure in-memory scans over already-loaded data. They never
// return errors; every anomaly degrades to a discrepancy entry. Output order
// always follows input record order.
package reconcile

import (
	"strings"

	"github.com/fitnz/fieldcheck/pkg/records"
)

// Reconciler detects discrepancies in loaded enrollment records.
type Reconciler interface {
	// MissingIdentifiers returns the students whose course information
	// field is missing a correctly embedded Student ID token.
	MissingIdentifiers(recs []records.FieldRecord) []records.MissingIdentifier

	// TutorDiscrepancies returns the students whose course information
	// field has a missing or inconsistent tutor reference.
	TutorDiscrepancies(recs []records.FieldRecord, roster records.Roster, pairings records.Pairings) []records.TutorDiscrepancy
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	marker string
	width  int
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	r := &reconciler{
		marker: DefaultMarker,
		width:  DefaultTokenWidth,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// MissingIdentifiers scans each record's data field for the marker token.
// A record is flagged when the marker is absent, or when the fixed-width
// token starting at the marker differs from the record's Student ID. A data
// field too short to hold the full token counts as a mismatch, never a panic.
func (r *reconciler) MissingIdentifiers(recs []records.FieldRecord) []records.MissingIdentifier {
	missing := []records.MissingIdentifier{}
	for _, rec := range recs {
		if !r.identifierOK(rec) {
			missing = append(missing, records.MissingIdentifier{
				StudentID: rec.StudentID,
				FirstName: rec.FirstName,
				LastName:  rec.LastName,
			})
		}
	}
	return missing
}

// identifierOK reports whether the record's data field embeds a token that
// matches its Student ID.
func (r *reconciler) identifierOK(rec records.FieldRecord) bool {
	p := strings.Index(rec.Data, r.marker)
	if p < 0 {
		return false
	}
	if p+r.width > len(rec.Data) {
		// Marker present but malformed: the token runs past the end
		// of the field.
		return false
	}
	return rec.Data[p:p+r.width] == rec.StudentID
}

// TutorDiscrepancies scans each record's data field for roster names in
// roster order; the first name that appears as a substring wins. This
// first-match tie-break is a documented limitation kept for reproducibility
// when one roster name is a substring of another.
//
// A matched name is compared against the pairing table: a differing pairing
// tutor is flagged carrying the pairing's value, since the pairing table is
// the source of truth. A matched record with no pairing row is left alone.
// A record with no roster match is always flagged, with the pairing's tutor
// when one exists and an empty placeholder otherwise.
func (r *reconciler) TutorDiscrepancies(recs []records.FieldRecord, roster records.Roster, pairings records.Pairings) []records.TutorDiscrepancy {
	flagged := []records.TutorDiscrepancy{}
	for _, rec := range recs {
		matched := ""
		found := false
		for _, name := range roster {
			if strings.Contains(rec.Data, name) {
				matched = name
				found = true
				break
			}
		}

		pairing, havePairing := pairings.ByStudent(rec.StudentID)

		if found {
			if havePairing && pairing.Tutor != matched {
				flagged = append(flagged, records.TutorDiscrepancy{
					StudentID: rec.StudentID,
					FirstName: rec.FirstName,
					LastName:  rec.LastName,
					Tutor:     pairing.Tutor,
				})
			}
			continue
		}

		flagged = append(flagged, records.TutorDiscrepancy{
			StudentID: rec.StudentID,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Tutor:     pairing.Tutor, // empty when no pairing exists
		})
	}
	return flagged
}
