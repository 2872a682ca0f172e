// Package prompt implements the interactive surface of fieldcheck: the
// numbered action menu and the file name prompts used before each
// reconciliation run.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fitnz/fieldcheck/pkg/errors"
)

// Action is a selection from the main menu.
type Action int

// Menu actions in display order.
const (
	// ActionCheckIdentifiers checks embedded Student IDs.
	ActionCheckIdentifiers Action = iota + 1
	// ActionCheckTutors checks tutor names against the roster and pairings.
	ActionCheckTutors
	// ActionExit leaves the menu loop.
	ActionExit
)

// Prompter reads user selections and file names from an input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// MainMenu displays the numbered action menu and reads a selection,
// reprompting until the input is a number within range.
func (p *Prompter) MainMenu() (Action, error) {
	low, high := int(ActionCheckIdentifiers), int(ActionExit)

	fmt.Fprintln(p.out, "\nOptions:")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "1 Check Student IDs")
	fmt.Fprintln(p.out, "2 Check Tutor Names")
	fmt.Fprintln(p.out, "3 Exit")

	for {
		fmt.Fprintf(p.out, "\nPlease enter the number for your selection --> ")

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		selection, err := strconv.Atoi(line)
		if err != nil || selection < low || selection > high {
			fmt.Fprintf(p.out, "\nPlease select from the available options (%d - %d)\n", low, high)
			continue
		}
		return Action(selection), nil
	}
}

// FileStem asks for the name of a source file, without extension. An empty
// response returns the default stem when one is given, otherwise reprompts.
func (p *Prompter) FileStem(label, def string) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(p.out, "What is the name of the %s file? [%s] ", label, def)
		} else {
			fmt.Fprintf(p.out, "What is the name of the %s file? ", label)
		}

		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		if def != "" {
			return def, nil
		}
	}
}

// CorrectedStem asks for a corrected file stem after a failed open. It has
// the signature the loader expects for its retry loop.
func (p *Prompter) CorrectedStem(ctx context.Context, stem string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.ErrCanceled
	}
	fmt.Fprintf(p.out, "The file %s.csv does not exist. Please check the file name before trying again.\n", stem)
	fmt.Fprintf(p.out, "What is the name of the file? ")
	return p.readLine()
}

// Confirm asks a yes/no question. An empty response yields the default.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s ", question, hint)

	line, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	case "":
		return def, nil
	default:
		return def, nil
	}
}

// readLine reads one trimmed line of input.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.WrapIO("read", "stdin", err)
	}
	return strings.TrimSpace(line), nil
}
