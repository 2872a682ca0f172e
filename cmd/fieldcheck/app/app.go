// Package app provides the application context and dependency management for
// the fieldcheck CLI. It centralizes configuration, logging, and the checker
// instance, following the dependency injection pattern.
package app

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fitnz/fieldcheck"
	"github.com/fitnz/fieldcheck/internal/csvio"
	"github.com/fitnz/fieldcheck/internal/prompt"
	"github.com/fitnz/fieldcheck/pkg/errors"
)

// App represents the fieldcheck application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Interactive prompter, shared by the menu and the loader retry loop
	prompter *prompt.Prompter

	// Checker instance (lazy-initialized, singleton)
	mu      sync.Mutex
	checker fieldcheck.Checker
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapIO("load", "config", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	app.prompter = prompt.New(os.Stdin, os.Stdout)

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Checker returns the checker instance, creating it lazily if needed.
func (a *App) Checker() (fieldcheck.Checker, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.checker != nil {
		return a.checker, nil
	}

	loader := csvio.NewLoader(a.config.Dir, a.prompter.CorrectedStem)

	checker, err := fieldcheck.New(a.buildCheckerOptions(loader)...)
	if err != nil {
		return nil, err
	}

	a.checker = checker
	return checker, nil
}

// Writer returns the CSV report writer for the configured directory.
func (a *App) Writer() *csvio.Writer {
	return csvio.NewWriter(a.config.Dir)
}

// buildCheckerOptions constructs checker options from the app configuration.
func (a *App) buildCheckerOptions(loader fieldcheck.Loader) []fieldcheck.Option {
	opts := []fieldcheck.Option{
		fieldcheck.WithLoader(loader),
	}

	if a.config.Dir != "" {
		opts = append(opts, fieldcheck.WithDir(a.config.Dir))
	}
	if a.config.Marker != "" {
		opts = append(opts, fieldcheck.WithMarker(a.config.Marker))
	}
	if a.config.TokenWidth > 0 {
		opts = append(opts, fieldcheck.WithTokenWidth(a.config.TokenWidth))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithChecker sets a custom checker instance (useful for testing).
func WithChecker(checker fieldcheck.Checker) Option {
	return func(a *App) error {
		a.checker = checker
		return nil
	}
}
