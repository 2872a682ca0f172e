package fieldcheck

import (
	"github.com/fitnz/fieldcheck/internal/csvio"
	"github.com/fitnz/fieldcheck/pkg/constants"
	"github.com/fitnz/fieldcheck/pkg/errors"
	"github.com/fitnz/fieldcheck/pkg/reconcile"
)

// config holds the checker configuration assembled from options.
type config struct {
	dir    string
	marker string
	width  int
}

// defaultConfig returns the default checker configuration: files are read
// from and written to the current directory, using the standard embedded
// identifier convention.
func defaultConfig() *config {
	return &config{
		dir:    ".",
		marker: constants.IdentifierMarker,
		width:  constants.IdentifierWidth,
	}
}

// reconcileOptions translates the config into reconciler options.
func (c *config) reconcileOptions() []reconcile.Option {
	return []reconcile.Option{
		reconcile.WithMarker(c.marker),
		reconcile.WithTokenWidth(c.width),
	}
}

// Option is a functional option for configuring a Checker.
type Option func(*checker) error

// options applies the options and fills in default collaborators for any
// left unset.
func (c *checker) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}

	if c.loader == nil {
		c.loader = csvio.NewLoader(c.config.dir, nil)
	}
	if c.errorLog == nil {
		c.errorLog = csvio.NewErrorLog(c.config.dir)
	}
	if c.warningLog == nil {
		c.warningLog = csvio.NewWarningLog(c.config.dir)
	}

	return nil
}

// WithDir sets the directory default collaborators read from and write to.
func WithDir(dir string) Option {
	return func(c *checker) error {
		if dir == "" {
			return errors.NewValidationError("dir", dir, "directory must not be empty")
		}
		c.config.dir = dir
		return nil
	}
}

// WithMarker sets the marker token for the embedded identifier convention.
func WithMarker(marker string) Option {
	return func(c *checker) error {
		if marker == "" {
			return errors.NewValidationError("marker", marker, "marker must not be empty")
		}
		c.config.marker = marker
		return nil
	}
}

// WithTokenWidth sets the extracted identifier token width.
func WithTokenWidth(width int) Option {
	return func(c *checker) error {
		if width <= 0 {
			return errors.NewValidationError("token width", width, "width must be positive")
		}
		c.config.width = width
		return nil
	}
}

// WithLoader sets a custom report loader, typically one that prompts for
// corrected file names interactively.
func WithLoader(loader Loader) Option {
	return func(c *checker) error {
		c.loader = loader
		return nil
	}
}

// WithErrorLog sets a custom error-log sink.
func WithErrorLog(sink ErrorSink) Option {
	return func(c *checker) error {
		c.errorLog = sink
		return nil
	}
}

// WithWarningLog sets a custom warning-log sink.
func WithWarningLog(sink WarningSink) Option {
	return func(c *checker) error {
		c.warningLog = sink
		return nil
	}
}

// WithReconciler sets a custom reconciliation engine (useful for testing).
func WithReconciler(r reconcile.Reconciler) Option {
	return func(c *checker) error {
		c.reconciler = r
		return nil
	}
}
