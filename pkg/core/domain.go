// Package core holds the note entity, the Store and the Repository port it persists through.
package core

// Outcome is the result of an operation that addresses a note by id.
// A miss is an ordinary outcome, not an error.
type Outcome int

const (
	// OutcomeApplied means the note was found and the change was made.
	OutcomeApplied Outcome = iota
	// OutcomeNotFound means no note carries the requested id; nothing changed.
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// IDPolicy selects how the store assigns ids to new notes.
type IDPolicy string

const (
	// IDMonotonic assigns one more than the highest id seen in this session.
	// Deleting a note never makes its id available again within a session.
	IDMonotonic IDPolicy = "monotonic"

	// IDCount assigns len(notes)+1. Deleting and then adding can hand out
	// an id that an earlier note held, or one that a surviving note still holds.
	IDCount IDPolicy = "count"
)

// Valid reports whether p is a known policy.
func (p IDPolicy) Valid() bool {
	return p == IDMonotonic || p == IDCount
}

// EventType represents the type of change observed on the notes file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of the notes file on disk.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
