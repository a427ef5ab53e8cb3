package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/scribe/pkg/core"
)

// noteRecord mirrors one element of the notes file. Pointer fields let the
// decoder tell a missing key from a zero value.
type noteRecord struct {
	ID        *int    `json:"note_id"`
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Timestamp *string `json:"timestamp"`
}

// decodeNotes parses a JSON array of note objects. Every element must carry
// exactly the keys note_id, title, body and timestamp.
func decodeNotes(r io.Reader) ([]core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", core.ErrMalformed)
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.DisallowUnknownFields()

	var records []noteRecord
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrMalformed, err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after array", core.ErrMalformed)
	}

	notes := make([]core.Note, 0, len(records))
	for i, rec := range records {
		if rec.ID == nil || rec.Title == nil || rec.Body == nil || rec.Timestamp == nil {
			return nil, fmt.Errorf("%w: element %d is missing required keys", core.ErrMalformed, i)
		}
		notes = append(notes, core.Note{
			ID:        *rec.ID,
			Title:     *rec.Title,
			Body:      *rec.Body,
			Timestamp: *rec.Timestamp,
		})
	}
	return notes, nil
}

// encodeNotes renders notes as a JSON array indented with two spaces.
// A nil slice is written as [] rather than null.
func encodeNotes(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(notes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
