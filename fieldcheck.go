// Package fieldcheck reconciles student enrollment records against the tutor
// roster and the authoritative student-tutor pairing table to detect missing
// or inconsistent identifying information.
//
// The package is the orchestration layer: it loads exported report snapshots
// through an injected Loader, runs the advisory field validation pass,
// forwards findings to the warning and error log sinks, and hands the typed
// records to the reconciliation engine in pkg/reconcile. It owns no matching
// logic itself.
package fieldcheck

import (
	"context"

	"github.com/fitnz/fieldcheck/internal/embedded"
	"github.com/fitnz/fieldcheck/pkg/constants"
	"github.com/fitnz/fieldcheck/pkg/logging"
	"github.com/fitnz/fieldcheck/pkg/reconcile"
	"github.com/fitnz/fieldcheck/pkg/records"
	"github.com/fitnz/fieldcheck/pkg/validate"
)

// Loader reads one exported report snapshot, returning its data rows with
// the header line skipped and empty-key rows dropped.
type Loader interface {
	Load(ctx context.Context, stem string) ([][]string, error)
}

// ErrorSink records fatal-field errors, keyed by report title.
type ErrorSink interface {
	Record(report string, errs []string) (string, error)
}

// WarningSink records non-fatal validation warnings.
type WarningSink interface {
	Record(title string, warnings []string) (string, error)
}

// Checker runs reconciliation passes over exported report snapshots.
type Checker interface {
	// CheckIdentifiers reports the students whose profile fields are
	// missing a correctly embedded Student ID.
	CheckIdentifiers(ctx context.Context, fieldsStem string) (*Outcome, error)

	// CheckTutors reports the students whose profile fields have a
	// missing or inconsistent tutor reference.
	CheckTutors(ctx context.Context, fieldsStem, rosterStem, pairingsStem string) (*Outcome, error)
}

// Outcome is the result of one reconciliation pass, ready for the CSV
// writer: a fixed header row, one row per discrepancy, and the validation
// warnings collected along the way.
type Outcome struct {
	// Report is the output file stem, e.g. "Missing_Student_IDs".
	Report string

	// Title is the source report title the warnings belong to.
	Title string

	// Headers is the fixed header row for the output file.
	Headers []string

	// Rows are the discrepancy tuples in input record order.
	Rows [][]string

	// Warnings are the validation warnings produced while loading.
	Warnings []string
}

// Output file stems for the two reconciliation passes.
const (
	missingIdentifiersStem = "Missing_Student_IDs"
	missingTutorsStem      = "Missing_Tutors"
)

// checker is the default implementation of Checker.
type checker struct {
	config     *config
	loader     Loader
	errorLog   ErrorSink
	warningLog WarningSink
	reconciler reconcile.Reconciler
}

// New creates a new Checker with the given options.
func New(opts ...Option) (Checker, error) {
	c := &checker{
		config: defaultConfig(),
	}

	if err := c.options(opts...); err != nil {
		return nil, err
	}

	if c.reconciler == nil {
		r, err := reconcile.New(c.config.reconcileOptions()...)
		if err != nil {
			return nil, err
		}
		c.reconciler = r
	}

	return c, nil
}

// CheckIdentifiers loads the profile fields report, validates it, and
// returns the missing-identifier discrepancies.
func (c *checker) CheckIdentifiers(ctx context.Context, fieldsStem string) (*Outcome, error) {
	recs, result, err := c.loadFields(ctx, fieldsStem)
	if err != nil {
		return nil, err
	}

	missing := c.reconciler.MissingIdentifiers(recs)

	rows := make([][]string, 0, len(missing))
	for _, m := range missing {
		rows = append(rows, m.Row())
	}

	logging.FromContext(ctx).Info().
		Int("checked", len(recs)).
		Int("flagged", len(rows)).
		Msg("Checked Student IDs")

	return &Outcome{
		Report:   missingIdentifiersStem,
		Title:    result.Title,
		Headers:  records.MissingIdentifierHeaders,
		Rows:     rows,
		Warnings: result.Warnings,
	}, nil
}

// CheckTutors loads the profile fields report, the tutor roster, and the
// pairing table, validates them, and returns the tutor discrepancies.
func (c *checker) CheckTutors(ctx context.Context, fieldsStem, rosterStem, pairingsStem string) (*Outcome, error) {
	recs, result, err := c.loadFields(ctx, fieldsStem)
	if err != nil {
		return nil, err
	}

	rosterRows, err := c.loader.Load(ctx, rosterStem)
	if err != nil {
		return nil, err
	}
	roster := records.ParseRoster(rosterRows)

	pairingRows, err := c.loader.Load(ctx, pairingsStem)
	if err != nil {
		return nil, err
	}
	pairings, err := c.parsePairings(ctx, pairingRows)
	if err != nil {
		return nil, err
	}

	flagged := c.reconciler.TutorDiscrepancies(recs, roster, pairings)

	rows := make([][]string, 0, len(flagged))
	for _, d := range flagged {
		rows = append(rows, d.Row())
	}

	logging.FromContext(ctx).Info().
		Int("checked", len(recs)).
		Int("roster", len(roster)).
		Int("flagged", len(rows)).
		Msg("Checked Tutor Names")

	return &Outcome{
		Report:   missingTutorsStem,
		Title:    result.Title,
		Headers:  records.TutorDiscrepancyHeaders,
		Rows:     rows,
		Warnings: result.Warnings,
	}, nil
}

// loadFields loads and validates the Student Profile Fields report.
func (c *checker) loadFields(ctx context.Context, stem string) ([]records.FieldRecord, validate.Result, error) {
	rows, err := c.loader.Load(ctx, stem)
	if err != nil {
		return nil, validate.Result{}, err
	}

	result := c.validateRows(ctx, constants.FieldsReport, rows)

	recs, err := records.ParseFieldRecords(rows)
	if err != nil {
		return nil, validate.Result{}, err
	}
	return recs, result, nil
}

// parsePairings validates and parses the student-tutor pairing rows.
// Pairing validation findings go to the sinks like the fields report's do;
// the pairing table itself never blocks the run.
func (c *checker) parsePairings(ctx context.Context, rows [][]string) (records.Pairings, error) {
	c.validateRows(ctx, constants.StudentTutorsReport, rows)
	return records.ParsePairings(rows)
}

// validateRows runs the advisory validation pass for one report and forwards
// findings to the configured sinks. Sink failures are logged, never fatal.
func (c *checker) validateRows(ctx context.Context, report string, rows [][]string) validate.Result {
	log := logging.FromContext(ctx)

	schema, err := embedded.Schema(report)
	if err != nil {
		log.Warn().Err(err).Str("report", report).Msg("No validation schema, skipping advisory pass")
		return validate.Result{}
	}

	result := schema.Check(rows)

	if result.HasErrors() && c.errorLog != nil {
		if _, err := c.errorLog.Record(result.Title, result.Errors); err != nil {
			log.Warn().Err(err).Msg("Failed to record error log")
		}
	}
	if result.HasWarnings() && c.warningLog != nil {
		if _, err := c.warningLog.Record(result.Title, result.Warnings); err != nil {
			log.Warn().Err(err).Msg("Failed to record warning log")
		}
	}

	return result
}
