package core

import "context"

// Repository defines the contract for persisting the note sequence.
// Adhering to this interface keeps the Store independent of the
// underlying storage format.
type Repository interface {
	// Load returns every persisted note in stored order.
	// A missing backing store yields an empty slice and no error.
	// Any other failure is a *PersistenceError.
	Load(ctx context.Context) ([]Note, error)

	// Save replaces the persisted sequence with notes, in order.
	// Failures are reported as *PersistenceError.
	Save(ctx context.Context, notes []Note) error
}

// Locatable is implemented by repositories backed by a named location
// (e.g. a file path).
type Locatable interface {
	Location() string
}
