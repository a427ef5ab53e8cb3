package fs

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/scribe/pkg/core"
)

// Serializer renders a sequence of notes in a specific format.
type Serializer interface {
	Serialize(notes []core.Note) ([]byte, error)
}

// Parser reads a sequence of notes from a specific format.
type Parser interface {
	Parse(r io.Reader) ([]core.Note, error)
}

// ErrUnknownFormat is returned for a format with no registered serializer.
var ErrUnknownFormat = errors.New("unknown format")

// DefaultSerializers returns the standard set of serializers keyed by format name.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		"json": JSONSerializer{},
		"yaml": YAMLSerializer{},
		"csv":  CSVSerializer{},
		"md":   MarkdownSerializer{},
	}
}

// SerializerFor returns the serializer for a format name or file extension
// ("yaml", ".yml", "md", ...).
func SerializerFor(format string) (Serializer, error) {
	s, ok := DefaultSerializers()[normalizeFormat(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return s, nil
}

// ParserFor returns the parser for a format name or file extension.
// Markdown is write-only.
func ParserFor(format string) (Parser, error) {
	s, ok := DefaultSerializers()[normalizeFormat(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	p, ok := s.(Parser)
	if !ok {
		return nil, fmt.Errorf("%w: %q cannot be parsed", ErrUnknownFormat, format)
	}
	return p, nil
}

func normalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	switch f {
	case "yml":
		return "yaml"
	case "markdown":
		return "md"
	}
	return f
}

// --- JSON Serializer ---

// JSONSerializer uses the notes file format itself.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(notes []core.Note) ([]byte, error) {
	return encodeNotes(notes)
}

func (JSONSerializer) Parse(r io.Reader) ([]core.Note, error) {
	return decodeNotes(r)
}

// --- YAML Serializer ---

// YAMLSerializer writes a YAML sequence of note mappings.
type YAMLSerializer struct{}

func (YAMLSerializer) Serialize(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(notes); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAMLSerializer) Parse(r io.Reader) ([]core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var notes []core.Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if notes == nil {
		notes = []core.Note{}
	}
	return notes, nil
}

// --- CSV Serializer ---

var csvHeader = []string{core.KeyID, core.KeyTitle, core.KeyBody, core.KeyTimestamp}

// CSVSerializer writes one row per note under a note_id,title,body,timestamp header.
type CSVSerializer struct{}

func (CSVSerializer) Serialize(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, n := range notes {
		if err := w.Write([]string{strconv.Itoa(n.ID), n.Title, n.Body, n.Timestamp}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse maps columns by header name. Only the title column is required;
// a missing or empty note_id parses as 0.
func (CSVSerializer) Parse(r io.Reader) ([]core.Note, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	if len(rows) == 0 {
		return []core.Note{}, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols[core.KeyTitle]; !ok {
		return nil, fmt.Errorf("invalid csv: missing %q column", core.KeyTitle)
	}

	field := func(row []string, key string) string {
		if i, ok := cols[key]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	notes := make([]core.Note, 0, len(rows)-1)
	for line, row := range rows[1:] {
		n := core.Note{
			Title:     field(row, core.KeyTitle),
			Body:      field(row, core.KeyBody),
			Timestamp: field(row, core.KeyTimestamp),
		}
		if raw := strings.TrimSpace(field(row, core.KeyID)); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid csv: row %d: note_id %q: %w", line+2, raw, err)
			}
			n.ID = id
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// --- Markdown Serializer ---

// MarkdownSerializer renders a human-readable document; it cannot be parsed back.
type MarkdownSerializer struct{}

func (MarkdownSerializer) Serialize(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	for i, n := range notes {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "## %s\n\n", n.Title)
		fmt.Fprintf(&buf, "_#%d · %s_\n\n", n.ID, n.Timestamp)
		if n.Body != "" {
			buf.WriteString(n.Body)
			if !strings.HasSuffix(n.Body, "\n") {
				buf.WriteString("\n")
			}
		}
	}
	return buf.Bytes(), nil
}
