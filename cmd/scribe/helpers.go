package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/scribe"
	"github.com/aretw0/scribe/internal/paths"
	"github.com/aretw0/scribe/pkg/core"
)

// Exit codes: user mistakes are distinguished from storage failures.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func notFoundError(id int) error {
	return &exitError{code: exitUserError, err: fmt.Errorf("note %d not found", id)}
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, core.ErrPersistence) {
		return exitSysError
	}
	return exitUserError
}

// parseID converts a note id argument, rejecting anything but an integer.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, usageErrorf("invalid note id %q: must be an integer", arg)
	}
	return id, nil
}

// notesFile resolves the notes file for this invocation.
func (a *app) notesFile() string {
	return paths.ResolveNotesFile(a.flagFile, a.cfg.GetString(cfgKeyFile))
}

// storeOptions translates configuration into library options.
func (a *app) storeOptions() ([]scribe.Option, error) {
	policy := core.IDPolicy(a.cfg.GetString(cfgKeyIDPolicy))
	if !policy.Valid() {
		return nil, usageErrorf("invalid id_policy %q (valid: %s, %s)", policy, core.IDMonotonic, core.IDCount)
	}
	return []scribe.Option{
		scribe.WithLogger(a.logger),
		scribe.WithIDPolicy(policy),
		scribe.WithAtomicSave(a.cfg.GetBool(cfgKeyAtomic)),
	}, nil
}

// openStore builds the repository and loads the store from it.
// The repository is returned as well for commands that need adapter features.
func (a *app) openStore(ctx context.Context, readOnly bool) (*core.Store, core.Repository, error) {
	opts, err := a.storeOptions()
	if err != nil {
		return nil, nil, err
	}
	path := a.notesFile()

	repo, err := scribe.Init(path, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize repository: %w", err)
	}

	opts = append(opts, scribe.WithRepository(repo), scribe.WithReadOnly(readOnly))
	store, err := scribe.Open(ctx, path, opts...)
	if err != nil {
		return nil, nil, err
	}
	return store, repo, nil
}

// printNotes writes notes in the human-readable block layout.
func printNotes(w io.Writer, notes []core.Note) {
	for _, n := range notes {
		printNote(w, n)
	}
}

func printNote(w io.Writer, n core.Note) {
	fmt.Fprintf(w, "ID: %d\nTitle: %s\nBody: %s\nTimestamp: %s\n\n", n.ID, n.Title, n.Body, n.Timestamp)
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
