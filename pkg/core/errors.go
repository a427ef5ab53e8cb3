package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrPersistence is matched (via errors.Is) by every *PersistenceError.
	ErrPersistence = errors.New("persistence failure")

	// ErrMalformed reports a notes file that is not a JSON array of notes.
	ErrMalformed = errors.New("malformed notes file")

	// ErrBadPattern reports an invalid title glob.
	ErrBadPattern = errors.New("invalid title pattern")

	// ErrReadOnly is returned by Save on a store opened read-only.
	ErrReadOnly = errors.New("store is in read-only mode")
)

// PersistenceError describes a failed load or save of the backing file.
// It is never recovered by the store; callers decide whether to abort.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrPersistence) hold for any PersistenceError.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
