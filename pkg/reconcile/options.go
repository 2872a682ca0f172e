package reconcile

import (
	"github.com/fitnz/fieldcheck/pkg/constants"
	"github.com/fitnz/fieldcheck/pkg/errors"
)

// Defaults for the embedded identifier convention.
const (
	// DefaultMarker is the marker token that locates an embedded Student ID.
	DefaultMarker = constants.IdentifierMarker

	// DefaultTokenWidth is the total extracted token width.
	DefaultTokenWidth = constants.IdentifierWidth
)

// Option configures a Reconciler.
type Option func(*reconciler) error

// WithMarker sets the marker token searched for in the data field.
func WithMarker(marker string) Option {
	return func(r *reconciler) error {
		if marker == "" {
			return errors.NewValidationError("marker", marker, "marker must not be empty")
		}
		r.marker = marker
		return nil
	}
}

// WithTokenWidth sets the total width of the extracted identifier token.
// The width covers the marker plus its fixed-width suffix, so it must be at
// least the marker length.
func WithTokenWidth(width int) Option {
	return func(r *reconciler) error {
		if width < len(r.marker) {
			return errors.NewValidationError("token width", width, "width must cover the marker")
		}
		r.width = width
		return nil
	}
}
