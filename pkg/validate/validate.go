// Package validate checks that loaded report rows carry required values.
// Each dataset has a Schema describing its positional columns and how
// strictly each one is required: an empty soft-required value is a warning,
// an empty hard-required value is an error. The pass is purely advisory;
// nothing here blocks reconciliation.
package validate

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/fitnz/fieldcheck/pkg/errors"
)

// Requirement is how strictly a column value is required.
type Requirement string

const (
	// RequirementKey marks the column holding the Student ID. It is used
	// to identify records in messages and is never itself checked, since
	// rows with an empty key are dropped at load time.
	RequirementKey Requirement = "key"

	// RequirementSoft marks a column whose empty value is a warning.
	RequirementSoft Requirement = "soft"

	// RequirementHard marks a column whose empty value is an error.
	RequirementHard Requirement = "hard"

	// RequirementNone marks a column that is never checked.
	RequirementNone Requirement = "none"
)

// Column describes one positional column of a report.
type Column struct {
	Name        string      `yaml:"name"`
	Requirement Requirement `yaml:"requirement"`
}

// Schema describes the fixed positional shape of one report and which of its
// columns are required. Column order matches the report's column order.
type Schema struct {
	Report  string   `yaml:"report"`
	Title   string   `yaml:"title"`
	Columns []Column `yaml:"columns"`
}

// ParseSchema parses a YAML schema definition.
func ParseSchema(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, errors.WrapParse("yaml", s.Report, err)
	}
	if len(s.Columns) == 0 {
		return Schema{}, errors.NewValidationError("columns", nil, "schema has no columns")
	}
	if s.keyIndex() < 0 {
		return Schema{}, errors.NewValidationError("columns", nil, "schema has no key column")
	}
	return s, nil
}

// keyIndex returns the position of the key column, or -1.
func (s Schema) keyIndex() int {
	for i, col := range s.Columns {
		if col.Requirement == RequirementKey {
			return i
		}
	}
	return -1
}

// Result accumulates the advisory findings of one validation pass.
type Result struct {
	// Title is the report title the findings belong to.
	Title string

	// Warnings are non-fatal omissions (soft-required fields).
	Warnings []string

	// Errors are fatal omissions (hard-required fields). They are still
	// advisory: the run proceeds with the record included in matching.
	Errors []string
}

// HasWarnings returns true if there are warnings.
func (r Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// HasErrors returns true if there are errors.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// String returns a one-line summary of the result.
func (r Result) String() string {
	if !r.HasWarnings() && !r.HasErrors() {
		return "Validation passed"
	}
	return fmt.Sprintf("Validation found %d warnings and %d errors", len(r.Warnings), len(r.Errors))
}

// Check validates raw report rows against the schema. Values beyond a row's
// length count as empty. Every empty soft-required value contributes exactly
// one warning and every empty hard-required value exactly one error; rows are
// never rejected.
func (s Schema) Check(rows [][]string) Result {
	result := Result{Title: s.Title}
	keyIdx := s.keyIndex()

	for _, row := range rows {
		key := value(row, keyIdx)
		for i, col := range s.Columns {
			if col.Requirement != RequirementSoft && col.Requirement != RequirementHard {
				continue
			}
			if value(row, i) != "" {
				continue
			}
			msg := fmt.Sprintf("%s is missing for student with Student ID %s", col.Name, key)
			if col.Requirement == RequirementHard {
				result.Errors = append(result.Errors, msg)
			} else {
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result
}

// value returns the row value at index i, or "" when the row is too short.
func value(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
