package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/pkg/core"
)

const shellMenu = `
1. Show Notes
2. Add Note
3. Edit Note
4. Delete Note
5. Filter by Date
6. Exit`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive menu",
		Long: `Shell runs a numbered menu over the notes. Changes stay in memory and
are written once, when the session ends with option 6 or end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.openStore(cmd.Context(), false)
			if err != nil {
				return err
			}

			sh := &shell{
				store: store,
				in:    bufio.NewReader(cmd.InOrStdin()),
				out:   cmd.OutOrStdout(),
			}
			readErr := sh.run()

			// Whatever was entered before a read failure is still saved.
			if err := store.Save(cmd.Context()); err != nil {
				return err
			}
			if readErr != nil {
				return &exitError{code: exitSysError, err: fmt.Errorf("read input: %w", readErr)}
			}
			fmt.Fprintln(sh.out, "Exiting the application. Notes saved.")
			return nil
		},
	}
}

type shell struct {
	store *core.Store
	in    *bufio.Reader
	out   io.Writer
}

var errEndOfInput = errors.New("end of input")

// prompt reads one line of any length. Only the line ending is removed;
// titles and bodies keep their surrounding spaces.
func (sh *shell) prompt(label string) (string, error) {
	fmt.Fprint(sh.out, label)
	line, err := sh.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", errEndOfInput
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (sh *shell) promptID(label string) (int, bool, error) {
	raw, err := sh.prompt(label)
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid note ID. Please enter a number.")
		return 0, false, nil
	}
	return id, true, nil
}

// run loops over the menu until the user exits or input ends.
// Only a failing reader is reported; end of input is a normal exit.
func (sh *shell) run() error {
	for {
		fmt.Fprintln(sh.out, shellMenu)
		choice, err := sh.prompt("Enter your choice: ")
		if err == nil {
			switch strings.TrimSpace(choice) {
			case "1":
				err = sh.showAll()
			case "2":
				err = sh.add()
			case "3":
				err = sh.edit()
			case "4":
				err = sh.delete()
			case "5":
				err = sh.filter()
			case "6":
				return nil
			default:
				fmt.Fprintln(sh.out, "Invalid choice. Please try again.")
			}
		}
		if err != nil {
			fmt.Fprintln(sh.out)
			if errors.Is(err, errEndOfInput) {
				return nil
			}
			return err
		}
	}
}

func (sh *shell) show(notes []core.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(sh.out, "No notes found.")
		return
	}
	printNotes(sh.out, notes)
}

func (sh *shell) showAll() error {
	date, err := sh.prompt("Enter date to filter (YYYY-MM-DD), press Enter to show all: ")
	if err != nil {
		return err
	}
	if date == "" {
		sh.show(sh.store.List(nil))
		return nil
	}
	sh.show(sh.store.FilterByDate(date))
	return nil
}

func (sh *shell) add() error {
	title, err := sh.prompt("Enter note title: ")
	if err != nil {
		return err
	}
	body, err := sh.prompt("Enter note body: ")
	if err != nil {
		return err
	}
	sh.store.Add(title, body)
	fmt.Fprintln(sh.out, "Note added successfully.")
	return nil
}

// edit asks for the replacement title and body before looking the note up,
// so a scripted session stays in step whether or not the id exists.
// The answers are stored as typed, empty ones included.
func (sh *shell) edit() error {
	id, ok, err := sh.promptID("Enter note ID to edit: ")
	if err != nil || !ok {
		return err
	}
	title, err := sh.prompt("Enter new title: ")
	if err != nil {
		return err
	}
	body, err := sh.prompt("Enter new body: ")
	if err != nil {
		return err
	}

	if sh.store.Edit(id, title, body) == core.OutcomeNotFound {
		fmt.Fprintln(sh.out, "Note not found.")
		return nil
	}
	fmt.Fprintln(sh.out, "Note edited successfully.")
	return nil
}

func (sh *shell) delete() error {
	id, ok, err := sh.promptID("Enter note ID to delete: ")
	if err != nil || !ok {
		return err
	}
	if sh.store.Delete(id) == core.OutcomeNotFound {
		fmt.Fprintln(sh.out, "Note not found.")
		return nil
	}
	fmt.Fprintln(sh.out, "Note deleted successfully.")
	return nil
}

func (sh *shell) filter() error {
	date, err := sh.prompt("Enter date to filter (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	sh.show(sh.store.FilterByDate(date))
	return nil
}
