package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitnz/fieldcheck"
	"github.com/fitnz/fieldcheck/internal/csvio"
	"github.com/fitnz/fieldcheck/internal/prompt"
	"github.com/fitnz/fieldcheck/pkg/errors"
)

// NewMenuCommand creates the interactive menu command.
func (a *App) NewMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive check menu",
		Long: `Menu starts the interactive numbered menu, prompting for source file
names before each check. This is the same surface the bare fieldcheck
command presents.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMenu(a.commandContext(cmd))
		},
	}
}

// NewIdentifiersCommand creates the ids command.
func (a *App) NewIdentifiersCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "ids",
		Short: "Check embedded Student IDs",
		Long: `Ids checks each student's course information field for a correctly
embedded Student ID and saves the students missing one to a timestamped
CSV report.

When --file is not given, the file name is prompted for interactively.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runIdentifiers(a.commandContext(cmd), file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Student Profile Fields file name, without extension")

	return cmd
}

// NewTutorsCommand creates the tutors command.
func (a *App) NewTutorsCommand() *cobra.Command {
	var file, roster, pairings string

	cmd := &cobra.Command{
		Use:   "tutors",
		Short: "Check tutor names against the roster and pairings",
		Long: `Tutors checks each student's course information field for a valid tutor
name and cross-references it against the authoritative student-tutor
pairing table. Students with a missing or inconsistent tutor are saved
to a timestamped CSV report.

When --file is not given, the file name is prompted for interactively.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTutors(a.commandContext(cmd), file, roster, pairings)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Student Profile Fields file name, without extension")
	cmd.Flags().StringVar(&roster, "roster", a.config.RosterStem, "tutor roster file name, without extension")
	cmd.Flags().StringVar(&pairings, "pairings", a.config.PairingsStem, "student-tutor pairings file name, without extension")

	return cmd
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("fieldcheck %s\n", a.version)
			fmt.Printf("  commit: %s\n", a.commit)
			fmt.Printf("  built:  %s\n", a.date)
		},
	}
}

// runMenu runs the interactive menu loop until the user exits or the
// context is canceled.
func (a *App) runMenu(ctx context.Context) error {
	fmt.Printf("\nFieldcheck %s - Student enrollment record checker\n", a.version)

	for {
		action, err := a.prompter.MainMenu()
		if err != nil {
			return err
		}

		switch action {
		case prompt.ActionCheckIdentifiers:
			err = a.runIdentifiers(ctx, "")
		case prompt.ActionCheckTutors:
			err = a.runTutors(ctx, "", a.config.RosterStem, a.config.PairingsStem)
		case prompt.ActionExit:
			fmt.Println("\nIf you have generated any files, please find them saved to disk. Goodbye.")
			return nil
		}

		if err != nil {
			if errors.IsCanceled(err) || ctx.Err() != nil {
				return err
			}
			// A failed check should not kill the session.
			a.logger.Error().Err(err).Msg("Check failed")
			fmt.Printf("\nThe check could not be completed: %v\n", err)
		}

		again, err := a.prompter.Confirm("\nProcess another file?", true)
		if err != nil {
			return err
		}
		if !again {
			fmt.Println("\nPlease find your files saved to disk. Goodbye.")
			return nil
		}
	}
}

// runIdentifiers performs the Student ID check and saves the report.
func (a *App) runIdentifiers(ctx context.Context, fieldsStem string) error {
	if fieldsStem == "" {
		stem, err := a.prompter.FileStem("Student Profile Fields", "")
		if err != nil {
			return err
		}
		fieldsStem = stem
	}

	checker, err := a.Checker()
	if err != nil {
		return err
	}

	outcome, err := checker.CheckIdentifiers(ctx, fieldsStem)
	if err != nil {
		return err
	}

	return a.save(outcome)
}

// runTutors performs the tutor name check and saves the report.
func (a *App) runTutors(ctx context.Context, fieldsStem, rosterStem, pairingsStem string) error {
	if fieldsStem == "" {
		stem, err := a.prompter.FileStem("Student Profile Fields", "")
		if err != nil {
			return err
		}
		fieldsStem = stem
	}
	if rosterStem == "" {
		rosterStem = a.config.RosterStem
	}
	if pairingsStem == "" {
		pairingsStem = a.config.PairingsStem
	}

	checker, err := a.Checker()
	if err != nil {
		return err
	}

	outcome, err := checker.CheckTutors(ctx, fieldsStem, rosterStem, pairingsStem)
	if err != nil {
		return err
	}

	return a.save(outcome)
}

// save writes the outcome to a timestamped CSV report and tells the user
// where it went.
func (a *App) save(outcome *fieldcheck.Outcome) error {
	path, err := a.Writer().Save(outcome.Report, outcome.Headers, outcome.Rows)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s has been saved to %s\n", csvio.DisplayName(outcome.Report), path)
	if len(outcome.Warnings) > 0 {
		fmt.Printf("%d warnings were recorded to the warning log.\n", len(outcome.Warnings))
	}
	return nil
}
