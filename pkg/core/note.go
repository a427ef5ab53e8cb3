package core

import "time"

// TimestampLayout is the fixed, second-resolution local time format stored
// on every note ("YYYY-MM-DD HH:MM:SS").
const TimestampLayout = "2006-01-02 15:04:05"

// Mapping keys of a serialized note.
const (
	KeyID        = "note_id"
	KeyTitle     = "title"
	KeyBody      = "body"
	KeyTimestamp = "timestamp"
)

// Note is one persisted text record.
// The Store owns every Note it hands out copies of; mutating a returned
// value never affects the store.
type Note struct {
	ID        int    `json:"note_id" yaml:"note_id"`
	Title     string `json:"title" yaml:"title"`
	Body      string `json:"body" yaml:"body"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// ToMapping returns the note as a plain key/value mapping suitable for
// serialization.
func (n Note) ToMapping() map[string]any {
	return map[string]any{
		KeyID:        n.ID,
		KeyTitle:     n.Title,
		KeyBody:      n.Body,
		KeyTimestamp: n.Timestamp,
	}
}

// FormatTimestamp renders t in the note timestamp layout, in local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}
